//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches passwordHash below.
const (
	DefaultPassword = "password123"
	passwordHash    = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestUser inserts an active account signing in with DefaultPassword.
// An existing email is reused and its id returned.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (email, password_hash, role, is_active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		email, passwordHash, role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "no user with email %s", email)
}

// CountJobs counts queued notifications of one kind.
func CountJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n))
	return n
}

func CountContactMessages(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM contact_messages").Scan(&n))
	return n
}
