package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              int64
	Endpoint            string
	Status              string
	RequestHash         string
	ResultAppointmentID *int64
	ExpiresAt           time.Time
}

const (
	NotificationEmail = "email"
	NotificationSMS   = "sms"

	TopicAppointmentBooked        = "appointment_booked"
	TopicAppointmentStatusChanged = "appointment_status_changed"
)

type NotificationJob struct {
	ID       int64
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

// AppointmentNotice is the outbox payload for appointment notifications.
type AppointmentNotice struct {
	AppointmentID int64  `json:"appointmentId"`
	CustomerID    int64  `json:"customerId"`
	SalonID       int64  `json:"salonId"`
	SalonName     string `json:"salonName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

const (
	BackupManual    = "manual"
	BackupScheduled = "scheduled"

	BackupCompleted = "completed"
	BackupFailed    = "failed"
)

type BackupLogEntry struct {
	Name   string
	Size   int64
	Type   string
	Status string
}
