package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hotel-storefront/internal/domain/user"
	reqdto "hotel-storefront/internal/handler/dto/request"
	"hotel-storefront/internal/infra"
	"hotel-storefront/internal/pkg/clock"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/usecase/queries"
	"hotel-storefront/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.New("email already registered")
	ErrRegistrationFailed   = errs.New("registration failed")
	ErrInvalidInput         = errs.New("invalid input")
)

const (
	JobKindPasswordReset = "password_reset"
	JobKindContact       = "contact"
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresAt   time.Time
}

type RegisterResult struct {
	UserID uuid.UUID
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	RequestPasswordReset(ctx context.Context, req reqdto.PasswordResetRequest) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role string) (string, time.Time, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
	CompareDummy(password string) error
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	hasher    PasswordHasher
	clock     clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, hasher PasswordHasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		hasher:    hasher,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, err := a.validateUser(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, expiresAt, err := a.tokens.GenerateToken(view.ID, role.String())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	hashed, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	u, err := user.NewCustomer(credentials.Email(), hashed)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Users().Create(ctx, tx.DB(), u)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	return &RegisterResult{UserID: id}, nil
}

type passwordResetPayload struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requested_at"`
}

// RequestPasswordReset enqueues a reset notification when the address belongs
// to an active user. Unknown addresses succeed silently.
func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, req reqdto.PasswordResetRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	view, _, err := a.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Wrap(err, "failed to look up user for password reset")
	}
	if !view.IsActive {
		return nil
	}

	now := a.clock.Now()
	payload, err := json.Marshal(passwordResetPayload{
		UserID:      view.ID,
		Email:       view.Email,
		RequestedAt: now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode password reset payload")
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, tx.DB(), JobKindPasswordReset, view.Email, payload, now)
	})
}

// validateUser answers unknown email and wrong password with the same error.
func (a *authCommandsImpl) validateUser(ctx context.Context, email, password string) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Error("failed to look up user for login", "error", err.Error())
		}
		_ = a.hasher.CompareDummy(password)
		return nil, ErrInvalidCredentials
	}

	if err := a.hasher.Compare(hashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
