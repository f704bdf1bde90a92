//go:build unit

package commands_test

import (
	"context"
	"time"

	"hotel-storefront/internal/domain/contact"
	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/infra/query"
	"hotel-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs Within against in-memory repositories. A set withinErr
// fails the transaction before fn runs.
type fakeUoW struct {
	tx        *fakeTx
	withinErr error
	calls     int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		users:         &fakeUsers{createID: uuid.New()},
		contacts:      &fakeContacts{id: uuid.New()},
		notifications: &fakeNotifications{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.calls++
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.tx)
}

type fakeTx struct {
	users         *fakeUsers
	contacts      *fakeContacts
	notifications *fakeNotifications
}

func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Contacts() shared.ContactRepository           { return t.contacts }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) DB() query.DBTX                               { return nil }

type fakeUsers struct {
	created      []*user.User
	createID     uuid.UUID
	createErr    error
	lastLogin    []uuid.UUID
	lastLoginErr error
}

func (r *fakeUsers) Create(_ context.Context, _ query.DBTX, u *user.User) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, u)
	return r.createID, nil
}

func (r *fakeUsers) UpdateLastLogin(_ context.Context, _ query.DBTX, userID uuid.UUID) error {
	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	r.lastLogin = append(r.lastLogin, userID)
	return nil
}

type fakeContacts struct {
	created []*contact.Message
	id      uuid.UUID
	err     error
}

func (r *fakeContacts) Create(_ context.Context, _ query.DBTX, msg *contact.Message) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.created = append(r.created, msg)
	return r.id, nil
}

type queuedJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

type fakeNotifications struct {
	jobs []queuedJob
	err  error
}

func (r *fakeNotifications) CreateJob(_ context.Context, _ query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.jobs = append(r.jobs, queuedJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}
