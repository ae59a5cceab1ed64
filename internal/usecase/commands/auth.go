package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/domain/settings"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrRegistrationClosed = settings.ErrRegistrationClosed
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

type LoginRequest struct {
	Email     string
	Password  string
	Role      string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	UserID      int64
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (int64, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	hasher PasswordHasher
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, hasher PasswordHasher) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		hasher: hasher,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	current, err := a.uow.CommandReads().Settings(ctx)
	if err != nil {
		return 0, err
	}
	if !current.AllowRegistration {
		return 0, ErrRegistrationClosed
	}

	name, err := user.NewName(req.Name)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return 0, errs.Wrap(err, "hash password")
	}

	account := user.NewUser(name, email, hash, role, phone)
	return shared.WithinResult(ctx, a.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		id, err := tx.Accounts().Create(ctx, tx.DB(), account)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return 0, ErrEmailTaken
			}
			return 0, err
		}
		return id, nil
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password, req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.tokens.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Accounts().UpdateLastLogin(ctx, tx.DB(), account.ID()); updateErr != nil {
			return updateErr
		}
		return tx.LoginLogs().Create(ctx, tx.DB(), account.ID(), req.IPAddress, req.UserAgent)
	})
	if err != nil {
		// Login already succeeded; only the audit trail is missing.
		slog.Warn("failed to record login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID(),
		Role:        account.Role(),
		AccessToken: accessToken,
	}, nil
}

// validateUser returns the same error for every mismatch so callers cannot probe accounts.
func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	account, err := a.uow.CommandReads().AccountByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive() {
		return nil, ErrUserInactive
	}

	if account.Role() != credentials.Role() {
		return nil, ErrInvalidCredentials
	}

	if err := a.hasher.Compare(account.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
