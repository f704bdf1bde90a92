package request

import (
	"hotel-storefront/internal/domain/contact"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

func (r *ContactRequest) ToDomain() (*contact.Message, error) {
	return contact.NewMessage(r.Name, r.Email, r.Subject, r.Message)
}
