package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/scheduler"
	"salon-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(
	cfg config.Config,
	pool *pgxpool.Pool,
	dispatcher commands.NotificationDispatcher,
	backups commands.BackupCommands,
	logger *slog.Logger,
) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg, scheduler.Jobs{
		Dispatcher: dispatcher,
		Backups:    backups,
		Keys:       repository.NewIdempotencyRepository(query.New(), pool),
	}, logger)
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
