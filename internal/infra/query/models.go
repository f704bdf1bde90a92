package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	LastLogin    pgtype.Timestamptz
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SiteSettings struct {
	ProfitMargin       float64
	DefaultVatRate     float64
	ExtraFee           float64
	OneTimeCouponPrice float64
	AnnualCouponPrice  float64
	Currency           string
	UpdatedAt          time.Time
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         string
}

type CreateContactMessageParams struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}
