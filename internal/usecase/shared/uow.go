package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/salon"
	"salon-booking/internal/domain/settings"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Accounts() AccountRepository
	Salons() SalonRepository
	Appointments() AppointmentRepository
	Settings() SettingsRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	BackupLogs() BackupLogRepository
	LoginLogs() LoginLogRepository
	Reads() CommandReads
	DB() query.DBTX
}

// CommandReads load write-side state as domain objects.
type CommandReads interface {
	AccountByID(ctx context.Context, id int64) (*user.User, error)
	AccountByEmail(ctx context.Context, email string) (*user.User, error)
	SalonByID(ctx context.Context, id int64) (*salon.Salon, error)
	AppointmentByID(ctx context.Context, id int64) (*appointment.Appointment, error)
	CountSlotBookings(ctx context.Context, salonID int64, date, slot string, excludeCanceled bool) (int, error)
	CountUpcomingBookings(ctx context.Context, salonID int64, fromDate string) (int, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, userID int64, endpoint string) (*IdempotencyRecord, error)
	Settings(ctx context.Context) (settings.Settings, error)
	LastCompletedBackupAt(ctx context.Context) (*time.Time, error)
}

type AccountRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) (int64, error)
	UpdateProfile(ctx context.Context, tx query.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx query.DBTX, userID int64) error
}

type SalonRepository interface {
	Create(ctx context.Context, tx query.DBTX, s *salon.Salon) (int64, error)
	Update(ctx context.Context, tx query.DBTX, s *salon.Salon) error
	Delete(ctx context.Context, tx query.DBTX, salonID int64) error
	LockForDelete(ctx context.Context, tx query.DBTX, salonID int64) error
	LockForBooking(ctx context.Context, tx query.DBTX, salonID int64) error
}

type AppointmentRepository interface {
	// LockSlot blocks other bookings of the same slot until the transaction ends.
	LockSlot(ctx context.Context, tx query.DBTX, salonID int64, date, slot string) error
	Create(ctx context.Context, tx query.DBTX, a *appointment.Appointment) (int64, error)
	UpdateStatus(ctx context.Context, tx query.DBTX, appointmentID int64, from, to appointment.Status) error
}

type SettingsRepository interface {
	Save(ctx context.Context, tx query.DBTX, s settings.Settings) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint string, appointmentID int64) error
	ClaimExpired(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, tx query.DBTX, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx query.DBTX, jobID int64) error
	MarkFailed(ctx context.Context, tx query.DBTX, jobID int64, lastError string, maxAttempts int32, retryAt time.Time) error
}

type BackupLogRepository interface {
	Create(ctx context.Context, tx query.DBTX, entry BackupLogEntry) (int64, error)
}

type LoginLogRepository interface {
	Create(ctx context.Context, tx query.DBTX, userID int64, ipAddress, userAgent string) error
}
