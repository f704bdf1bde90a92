package repository

import (
	"context"

	"hotel-storefront/internal/domain/contact"
	"hotel-storefront/internal/infra"
	"hotel-storefront/internal/infra/query"

	"github.com/google/uuid"
)

type ContactWriteQueries interface {
	CreateContactMessage(ctx context.Context, db query.DBTX, arg query.CreateContactMessageParams) (uuid.UUID, error)
}

type ContactRepository struct {
	queries ContactWriteQueries
}

func NewContactRepository(queries ContactWriteQueries) *ContactRepository {
	return &ContactRepository{
		queries: queries,
	}
}

func (r *ContactRepository) Create(ctx context.Context, tx query.DBTX, msg *contact.Message) (uuid.UUID, error) {
	id, err := r.queries.CreateContactMessage(ctx, tx, query.CreateContactMessageParams{
		Name:    msg.Name(),
		Email:   msg.Email().Value(),
		Subject: msg.Subject(),
		Body:    msg.Body(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create contact message", err)
	}
	return id, nil
}
