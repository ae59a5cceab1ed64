package scheduler

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 5 * time.Minute

// KeyPurger removes Idempotency-Key records past their expiry.
type KeyPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type Jobs struct {
	Dispatcher commands.NotificationDispatcher
	Backups    commands.BackupCommands
	Keys       KeyPurger
}

// Scheduler runs the background jobs: outbox delivery, automatic backups and
// idempotency key cleanup. A job that is still running when its next tick fires is skipped.
type Scheduler struct {
	cron   *cron.Cron
	jobs   Jobs
	logger *slog.Logger
}

func New(cfg config.Config, jobs Jobs, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		jobs:   jobs,
		logger: logger,
	}

	entries := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{name: "notification_dispatch", spec: cfg.Notify.DispatchSpec, run: s.dispatchNotifications},
		{name: "auto_backup", spec: cfg.Backup.CheckSpec, run: s.runDueBackup},
		{name: "idempotency_purge", spec: cfg.Booking.IdempotencyPurgeSpec, run: s.purgeIdempotencyKeys},
	}
	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.spec, s.wrap(e.name, e.run)); err != nil {
			return nil, errs.Wrapf(err, "invalid cron spec %q for %s", e.spec, e.name)
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop prevents new runs and waits for running jobs until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) wrap(name string, run func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			s.logger.Error("Scheduled job failed", "job", name, "error", err.Error(), "duration", time.Since(start))
			return
		}
		s.logger.Debug("Scheduled job finished", "job", name, "duration", time.Since(start))
	}
}

func (s *Scheduler) dispatchNotifications(ctx context.Context) error {
	result, err := s.jobs.Dispatcher.Dispatch(ctx)
	if err != nil {
		return err
	}
	if result.Sent+result.Failed+result.Skipped > 0 {
		s.logger.Info("Notifications dispatched",
			"sent", result.Sent,
			"failed", result.Failed,
			"skipped", result.Skipped)
	}
	return nil
}

func (s *Scheduler) runDueBackup(ctx context.Context) error {
	ran, err := s.jobs.Backups.RunIfDue(ctx)
	if err != nil {
		return err
	}
	if ran {
		s.logger.Info("Scheduled backup completed")
	}
	return nil
}

func (s *Scheduler) purgeIdempotencyKeys(ctx context.Context) error {
	n, err := s.jobs.Keys.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("Expired idempotency keys deleted", "count", n)
	}
	return nil
}

// cronLogger adapts slog to cron's logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
