package commands

import (
	"context"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

type SettingsCommands interface {
	Update(ctx context.Context, actor shared.Actor, p settings.Patch) (settings.Settings, error)
}

type settingsCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsCommands(uow shared.UnitOfWork) SettingsCommands {
	return &settingsCommandsImpl{uow: uow}
}

// Update upserts the provided fields over the stored row, or over the defaults when none exists.
func (uc *settingsCommandsImpl) Update(ctx context.Context, actor shared.Actor, p settings.Patch) (settings.Settings, error) {
	if !actor.IsAdmin() {
		return settings.Settings{}, errs.ErrForbidden
	}

	return shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (settings.Settings, error) {
		current, err := tx.Reads().Settings(ctx)
		if err != nil {
			return settings.Settings{}, err
		}

		next, err := current.Apply(p)
		if err != nil {
			return settings.Settings{}, errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Settings().Save(ctx, tx.DB(), next); err != nil {
			return settings.Settings{}, err
		}
		return next, nil
	})
}
