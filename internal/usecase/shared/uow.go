package shared

import (
	"context"
	"time"

	"hotel-storefront/internal/domain/contact"
	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/infra/query"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one transaction. fn may run more than once when the
// database reports a serialization failure or deadlock.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Contacts() ContactRepository
	Notifications() NotificationRepository
	DB() query.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx query.DBTX, userID uuid.UUID) error
}

type ContactRepository interface {
	Create(ctx context.Context, tx query.DBTX, msg *contact.Message) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
