package query

import (
	"context"

	"hotel-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const findUserByEmail = `
SELECT id, email, password_hash, role, last_login, is_active, created_at, updated_at
FROM users
WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var u Users
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.LastLogin, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const findUserByID = `
SELECT id, email, password_hash, role, last_login, is_active, created_at, updated_at
FROM users
WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, findUserByID, id)
	var u Users
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.LastLogin, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const createUser = `
INSERT INTO users (email, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser, arg.Email, arg.PasswordHash, arg.Role)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateUserLastLogin = `
UPDATE users
SET last_login = NOW(), updated_at = NOW()
WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	return pgconv.AffectedOne(db.Exec(ctx, updateUserLastLogin, id))
}
