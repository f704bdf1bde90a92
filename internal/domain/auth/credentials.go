package auth

import (
	"errors"

	"hotel-storefront/internal/domain/user"
)

// ErrMalformedCredentials wraps every validation failure so login can answer it
// like a wrong password while register can still report the exact cause.
var ErrMalformedCredentials = errors.New("malformed credentials")

// Credentials is a normalized email with a password that fits bcrypt.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, errors.Join(ErrMalformedCredentials, err)
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return Credentials{}, errors.Join(ErrMalformedCredentials, err)
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }
