//go:build unit

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"
	commandsmock "salon-booking/tests/mock/commands"
	schedulermock "salon-booking/tests/mock/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	dispatcher *commandsmock.MockNotificationDispatcher
	backups    *commandsmock.MockBackupCommands
	keys       *schedulermock.MockKeyPurger
	scheduler  *Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		dispatcher: commandsmock.NewMockNotificationDispatcher(ctrl),
		backups:    commandsmock.NewMockBackupCommands(ctrl),
		keys:       schedulermock.NewMockKeyPurger(ctrl),
	}
	s, err := New(config.NewTestConfig(), Jobs{
		Dispatcher: f.dispatcher,
		Backups:    f.backups,
		Keys:       f.keys,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	f.scheduler = s
	return f
}

func TestNew(t *testing.T) {
	t.Run("registers one entry per job", func(t *testing.T) {
		f := newFixture(t)
		assert.Len(t, f.scheduler.cron.Entries(), 3)
	})

	t.Run("rejects an invalid spec", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Backup.CheckSpec = "every now and then"
		_, err := New(cfg, Jobs{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auto_backup")
	})
}

func TestJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatch forwards to the outbox dispatcher", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Return(commands.DispatchResult{Sent: 2}, nil).Times(1)
		assert.NoError(t, f.scheduler.dispatchNotifications(ctx))
	})

	t.Run("dispatch surfaces errors", func(t *testing.T) {
		f := newFixture(t)
		f.dispatcher.EXPECT().Dispatch(gomock.Any()).Return(commands.DispatchResult{}, errors.New("db down")).Times(1)
		assert.EqualError(t, f.scheduler.dispatchNotifications(ctx), "db down")
	})

	t.Run("backup only runs when due", func(t *testing.T) {
		f := newFixture(t)
		f.backups.EXPECT().RunIfDue(gomock.Any()).Return(false, nil).Times(1)
		assert.NoError(t, f.scheduler.runDueBackup(ctx))
	})

	t.Run("purge deletes expired keys", func(t *testing.T) {
		f := newFixture(t)
		f.keys.EXPECT().DeleteExpired(gomock.Any()).Return(int64(3), nil).Times(1)
		assert.NoError(t, f.scheduler.purgeIdempotencyKeys(ctx))
	})

	t.Run("wrapped job gets a deadline", func(t *testing.T) {
		f := newFixture(t)
		var hadDeadline bool
		f.scheduler.wrap("probe", func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return errors.New("logged, not returned")
		})()
		assert.True(t, hadDeadline)
	})
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)
	f.scheduler.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, f.scheduler.Stop(ctx))
}
