package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        pgtype.Text
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Salon struct {
	ID                 int64
	OwnerID            int64
	Name               string
	Description        string
	Address            string
	City               string
	State              string
	Zip                string
	Latitude           pgtype.Float8
	Longitude          pgtype.Float8
	LocationName       string
	WorkingDays        []string
	StartTime          string
	EndTime            string
	BreakStartTime     pgtype.Text
	BreakEndTime       pgtype.Text
	SlotDuration       int32
	MaxBookingsPerSlot int32
	MinServicePrice    pgtype.Numeric
	MaxServicePrice    pgtype.Numeric
	OfferStatus        string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type Appointment struct {
	ID        int64
	UserID    int64
	SalonID   int64
	OwnerID   int64
	Date      string
	Time      string
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type SystemSetting struct {
	SiteName           string
	SiteDescription    string
	Timezone           string
	Language           string
	MaintenanceMode    bool
	AllowRegistration  bool
	EmailNotifications bool
	SmsNotifications   bool
	AutoBackup         bool
	BackupFrequency    string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type BackupLog struct {
	ID         int64
	BackupName string
	BackupSize int64
	BackupType string
	Status     string
	CreatedAt  pgtype.Timestamptz
}

type LoginLog struct {
	ID        int64
	UserID    int64
	IpAddress string
	UserAgent string
	LoginTime pgtype.Timestamptz
}

type NotificationJob struct {
	ID        int64
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type IdempotencyKey struct {
	Key                 pgtype.UUID
	UserID              int64
	Endpoint            string
	RequestHash         string
	Status              string
	ResultAppointmentID pgtype.Int8
	ExpiresAt           pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
}
