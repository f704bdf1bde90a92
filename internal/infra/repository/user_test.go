//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-storefront/internal/infra"
	"hotel-storefront/internal/infra/query"
	"hotel-storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// stubDB satisfies query.DBTX for repositories whose queries are mocked.
type stubDB struct{}

func (stubDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (stubDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func TestUpdateLastLogin(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "user vanished", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, userID).Return(tt.mockError)

			err := NewUserRepository(mockQueries).UpdateLastLogin(context.Background(), stubDB{}, userID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCreateUser(t *testing.T) {
	u, err := builder.NewUserBuilder().WithEmail("New.Guest@Example.com").BuildDomain()
	require.NoError(t, err)

	expectedParams := query.CreateUserParams{
		Email:        "new.guest@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
	}

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate email", mockError: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newID := uuid.New()
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, expectedParams).Return(newID, tt.mockError)

			id, err := NewUserRepository(mockQueries).Create(context.Background(), stubDB{}, u)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, id)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newID, id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestCreateNotificationJob(t *testing.T) {
	runAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	payload := []byte(`{"email":"guest@example.com"}`)

	t.Run("queued with run_at", func(t *testing.T) {
		mockQueries := new(MockNotificationWriteQueries)
		mockQueries.On("CreateNotificationJob", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.CreateNotificationJobParams) bool {
			return p.Kind == "contact" &&
				p.Topic == "guest@example.com" &&
				string(p.Payload) == string(payload) &&
				p.RunAt.Valid && p.RunAt.Time.Equal(runAt) &&
				p.Status == "queued"
		})).Return(nil)

		err := NewNotificationRepository(mockQueries).CreateJob(context.Background(), stubDB{}, "contact", "guest@example.com", payload, runAt)

		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockNotificationWriteQueries)
		mockQueries.On("CreateNotificationJob", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		err := NewNotificationRepository(mockQueries).CreateJob(context.Background(), stubDB{}, "contact", "guest@example.com", payload, runAt)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

type MockContactWriteQueries struct {
	mock.Mock
}

func (m *MockContactWriteQueries) CreateContactMessage(ctx context.Context, db query.DBTX, arg query.CreateContactMessageParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestCreateContactMessage(t *testing.T) {
	msg, err := builder.NewContactBuilder().BuildDomain()
	require.NoError(t, err)

	newID := uuid.New()
	mockQueries := new(MockContactWriteQueries)
	mockQueries.On("CreateContactMessage", mock.Anything, mock.Anything, query.CreateContactMessageParams{
		Name:    "Ana García",
		Email:   "ana@example.com",
		Subject: "Late check-in",
		Body:    "Hello, we will arrive around midnight. Is that a problem?",
	}).Return(newID, nil)

	id, err := NewContactRepository(mockQueries).Create(context.Background(), stubDB{}, msg)

	require.NoError(t, err)
	assert.Equal(t, newID, id)
	mockQueries.AssertExpectations(t)
}
