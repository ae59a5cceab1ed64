package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/salon"
	"salon-booking/internal/domain/settings"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt rolls back explicitly; no defers accumulate across retries.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db query.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	accountRepo      shared.AccountRepository
	salonRepo        shared.SalonRepository
	appointmentRepo  shared.AppointmentRepository
	settingsRepo     shared.SettingsRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	backupLogRepo    shared.BackupLogRepository
	loginLogRepo     shared.LoginLogRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accountRepo == nil {
		t.accountRepo = repository.NewAccountRepository(t.uow.q, t.dbtx)
	}
	return t.accountRepo
}

func (t *pgTx) Salons() shared.SalonRepository {
	if t.salonRepo == nil {
		t.salonRepo = repository.NewSalonRepository(t.uow.q, t.dbtx)
	}
	return t.salonRepo
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.uow.q, t.dbtx)
	}
	return t.appointmentRepo
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settingsRepo == nil {
		t.settingsRepo = repository.NewSettingsRepository(t.uow.q, t.dbtx)
	}
	return t.settingsRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) BackupLogs() shared.BackupLogRepository {
	if t.backupLogRepo == nil {
		t.backupLogRepo = repository.NewBackupLogRepository(t.uow.q, t.dbtx)
	}
	return t.backupLogRepo
}

func (t *pgTx) LoginLogs() shared.LoginLogRepository {
	if t.loginLogRepo == nil {
		t.loginLogRepo = repository.NewLoginLogRepository(t.uow.q, t.dbtx)
	}
	return t.loginLogRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	settingsStore    *readstore.SettingsReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) AccountByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.uow.q.GetAccountByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load account", err)
	}
	return converter.UserFromInfra(row), nil
}

func (r *commandReads) AccountByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.uow.q.GetAccountByEmail(ctx, r.dbtx, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load account by email", err)
	}
	return converter.UserFromInfra(row), nil
}

func (r *commandReads) SalonByID(ctx context.Context, id int64) (*salon.Salon, error) {
	row, err := r.uow.q.GetSalonByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load salon", err)
	}
	s, err := converter.SalonFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored salon is invalid", err)
	}
	return s, nil
}

func (r *commandReads) AppointmentByID(ctx context.Context, id int64) (*appointment.Appointment, error) {
	row, err := r.uow.q.GetAppointmentByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}
	return converter.AppointmentFromInfra(row), nil
}

func (r *commandReads) CountSlotBookings(ctx context.Context, salonID int64, date, slot string, excludeCanceled bool) (int, error) {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.uow.q, r.dbtx)
	}
	return r.appointmentStore.CountForSlot(ctx, salonID, date, slot, excludeCanceled)
}

func (r *commandReads) CountUpcomingBookings(ctx context.Context, salonID int64, fromDate string) (int, error) {
	count, err := r.uow.q.CountUpcomingBookedBySalon(ctx, r.dbtx, query.CountUpcomingBookedBySalonParams{
		SalonID:  salonID,
		FromDate: fromDate,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count upcoming bookings", err)
	}
	return int(count), nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, userID int64, endpoint string) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}
	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID, endpoint)
}

func (r *commandReads) Settings(ctx context.Context) (settings.Settings, error) {
	if r.settingsStore == nil {
		r.settingsStore = readstore.NewSettingsReadStore(r.uow.q, r.dbtx)
	}
	return r.settingsStore.Get(ctx)
}

func (r *commandReads) LastCompletedBackupAt(ctx context.Context) (*time.Time, error) {
	ts, err := r.uow.q.GetLastCompletedBackupAt(ctx, r.dbtx)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get last backup time", err)
	}
	return pgconv.TimePtrFromPgtype(ts), nil
}
