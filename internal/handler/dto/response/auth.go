package response

import (
	"time"

	"hotel-storefront/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	ExpiresAt   time.Time                   `json:"expires_at"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}
