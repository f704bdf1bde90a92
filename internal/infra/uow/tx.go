package uow

import (
	"hotel-storefront/internal/infra/query"
	"hotel-storefront/internal/infra/repository"
	"hotel-storefront/internal/usecase/shared"
)

// pgTx hands out repositories bound to one transaction. They are built on
// first use since most units of work touch only one or two of them.
type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	users         shared.UserRepository
	contacts      shared.ContactRepository
	notifications shared.NotificationRepository
}

func newPgTx(dbtx query.DBTX, q *query.Queries) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) DB() query.DBTX { return t.dbtx }

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.q)
	}
	return t.users
}

func (t *pgTx) Contacts() shared.ContactRepository {
	if t.contacts == nil {
		t.contacts = repository.NewContactRepository(t.q)
	}
	return t.contacts
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.q)
	}
	return t.notifications
}
