package usecase

import (
	"hotel-storefront/internal/domain/user"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid access token")

// TokenValidator resolves an access token to the caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type ClaimsParser interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	parser ClaimsParser
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{parser: jwtService}
}

// ValidateToken marks every failure with ErrInvalidToken; the underlying cause
// stays reachable through errors.Is.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.parser.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", errs.Mark(errs.New("token has no subject"), ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}

	return claims.UserID, role, nil
}
