//go:build unit

package commands_test

import (
	"context"
	"testing"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/ptr"
	"salon-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other settings", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		uc := commands.NewSettingsCommands(m.uow)

		m.reads.EXPECT().Settings(ctx).Return(settings.Defaults(), nil)
		m.settings.EXPECT().Save(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, s settings.Settings) error {
				assert.True(t, s.MaintenanceMode)
				assert.Equal(t, settings.BackupWeekly, s.BackupFrequency)
				assert.Equal(t, "Salon Booking", s.SiteName)
				return nil
			})

		got, err := uc.Update(ctx, salonOwner, settings.Patch{
			MaintenanceMode: ptr.Of(true),
			BackupFrequency: ptr.Of("weekly"),
		})
		require.NoError(t, err)
		assert.True(t, got.MaintenanceMode)
	})

	t.Run("invalid frequency", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		uc := commands.NewSettingsCommands(m.uow)
		m.reads.EXPECT().Settings(ctx).Return(settings.Defaults(), nil)

		_, err := uc.Update(ctx, salonOwner, settings.Patch{BackupFrequency: ptr.Of("hourly")})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("customers are forbidden", func(t *testing.T) {
		m := newTxMocks(gomock.NewController(t))
		uc := commands.NewSettingsCommands(m.uow)

		_, err := uc.Update(ctx, customer, settings.Patch{})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
