package commands

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/contact_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	reqdto "hotel-storefront/internal/handler/dto/request"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/usecase/shared"
)

type ContactResult struct {
	MessageID uuid.UUID
}

type ContactCommands interface {
	Submit(ctx context.Context, req reqdto.ContactRequest) (*ContactResult, error)
}

type contactCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewContactCommands(uow shared.UnitOfWork, clk clock.Clock) ContactCommands {
	return &contactCommandsImpl{uow: uow, clock: clk}
}

type contactPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
}

// Submit stores the message and its notification job in one transaction.
func (c *contactCommandsImpl) Submit(ctx context.Context, req reqdto.ContactRequest) (*ContactResult, error) {
	msg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Contacts().Create(ctx, tx.DB(), msg)
		if createErr != nil {
			return createErr
		}

		payload, marshalErr := json.Marshal(contactPayload{
			MessageID: id,
			Name:      msg.Name(),
			Email:     msg.Email().Value(),
			Subject:   msg.Subject(),
		})
		if marshalErr != nil {
			return errs.Wrap(marshalErr, "failed to encode contact payload")
		}

		return tx.Notifications().CreateJob(ctx, tx.DB(), JobKindContact, msg.Email().Value(), payload, c.clock.Now())
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to submit contact message")
	}

	return &ContactResult{MessageID: id}, nil
}
