package repository

import (
	"context"

	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/infra"
	"hotel-storefront/internal/infra/query"
	"hotel-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, query.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx query.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("user not found for last login update", err, infra.KindNotFound)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
