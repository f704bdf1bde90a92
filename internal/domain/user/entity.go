package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrMissingPasswordHash = errors.New("password hash is required")

// User is a storefront account ready to be persisted. Self-service
// registration only creates customers; admins are provisioned out of band.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	isActive     bool
}

func New(email Email, passwordHash string, role Role) (*User, error) {
	if passwordHash == "" {
		return nil, ErrMissingPasswordHash
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func NewCustomer(email Email, passwordHash string) (*User, error) {
	return New(email, passwordHash, RoleCustomer)
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
