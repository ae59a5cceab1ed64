//go:build unit

package settings_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	base := settings.Defaults()

	t.Run("部分更新", func(t *testing.T) {
		got, err := base.Apply(settings.Patch{
			MaintenanceMode: ptr.Of(true),
			BackupFrequency: ptr.Of("weekly"),
		})
		require.NoError(t, err)
		assert.True(t, got.MaintenanceMode)
		assert.Equal(t, settings.BackupWeekly, got.BackupFrequency)
		assert.Equal(t, base.SiteName, got.SiteName)
		assert.False(t, base.MaintenanceMode)
	})

	t.Run("不正な値はそのまま返す", func(t *testing.T) {
		for _, p := range []settings.Patch{
			{SiteName: ptr.Of("")},
			{BackupFrequency: ptr.Of("hourly")},
			{TimeZone: ptr.Of("Mars/Olympus")},
		} {
			got, err := base.Apply(p)
			require.Error(t, err)
			assert.Equal(t, base, got)
		}
	})
}

func TestBackupDue(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	s := settings.Defaults()

	assert.True(t, s.BackupDue(nil, now))
	assert.False(t, s.BackupDue(ptr.Of(now.Add(-23*time.Hour)), now))
	assert.True(t, s.BackupDue(ptr.Of(now.Add(-24*time.Hour)), now))

	s.BackupFrequency = settings.BackupMonthly
	assert.False(t, s.BackupDue(ptr.Of(now.Add(-29*24*time.Hour)), now))

	s.AutoBackup = false
	assert.False(t, s.BackupDue(nil, now))
}
