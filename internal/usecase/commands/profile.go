package commands

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound           = errs.New("user not found")
	ErrInvalidCurrentPassword = errs.New("current password is incorrect")
)

// UpdateProfileRequest is a partial update; nil fields keep their value and an empty phone clears it.
type UpdateProfileRequest struct {
	Name            *string
	Email           *string
	Phone           *string
	CurrentPassword *string
	NewPassword     *string
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error
}

type profileCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
}

func NewProfileCommands(uow shared.UnitOfWork, hasher PasswordHasher) ProfileCommands {
	return &profileCommandsImpl{uow: uow, hasher: hasher}
}

func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Reads().AccountByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		name, err := user.NewName(patch.Coalesce(req.Name, account.Name().Value()))
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		email, err := user.NewEmail(patch.Coalesce(req.Email, account.Email().Value()))
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		phone := account.Phone()
		if req.Phone != nil {
			phone, err = user.NewPhone(*req.Phone)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}
		account.ChangeProfile(name, email, phone)

		if req.NewPassword != nil {
			if err := p.changePassword(account, req.CurrentPassword, *req.NewPassword); err != nil {
				return err
			}
		}

		if err := tx.Accounts().UpdateProfile(ctx, tx.DB(), account); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
}

func (p *profileCommandsImpl) changePassword(account *user.User, current *string, next string) error {
	if current == nil || p.hasher.Compare(account.PasswordHash(), *current) != nil {
		return ErrInvalidCurrentPassword
	}
	pw, err := user.NewPassword(next)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	hash, err := p.hasher.Hash(pw.Value())
	if err != nil {
		return errs.Wrap(err, "hash password")
	}
	account.ChangePasswordHash(hash)
	return nil
}
