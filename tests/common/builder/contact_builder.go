//go:build unit || e2e

package builder

import (
	"hotel-storefront/internal/domain/contact"
	reqdto "hotel-storefront/internal/handler/dto/request"
)

type ContactBuilder struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		Name:    "Ana García",
		Email:   "ana@example.com",
		Subject: "Late check-in",
		Message: "Hello, we will arrive around midnight. Is that a problem?",
	}
}

func (b *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(b)
	return b
}

func (b *ContactBuilder) BuildDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		Name:    b.Name,
		Email:   b.Email,
		Subject: b.Subject,
		Message: b.Message,
	}
}

func (b *ContactBuilder) BuildDomain() (*contact.Message, error) {
	return contact.NewMessage(b.Name, b.Email, b.Subject, b.Message)
}
