package settings

import (
	"errors"
	"time"
)

var (
	ErrInvalidSiteName        = errors.New("site name is required")
	ErrInvalidBackupFrequency = errors.New("backup frequency must be daily, weekly or monthly")
	ErrInvalidTimeZone        = errors.New("unknown timezone")
	ErrRegistrationClosed     = errors.New("registration is currently disabled")
)

type BackupFrequency string

const (
	BackupDaily   BackupFrequency = "daily"
	BackupWeekly  BackupFrequency = "weekly"
	BackupMonthly BackupFrequency = "monthly"
)

func NewBackupFrequency(s string) (BackupFrequency, error) {
	switch f := BackupFrequency(s); f {
	case BackupDaily, BackupWeekly, BackupMonthly:
		return f, nil
	}
	return "", ErrInvalidBackupFrequency
}

func (f BackupFrequency) Interval() time.Duration {
	switch f {
	case BackupWeekly:
		return 7 * 24 * time.Hour
	case BackupMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Settings is the single system-wide configuration row.
type Settings struct {
	SiteName           string
	SiteDescription    string
	TimeZone           string
	Language           string
	MaintenanceMode    bool
	AllowRegistration  bool
	EmailNotifications bool
	SMSNotifications   bool
	AutoBackup         bool
	BackupFrequency    BackupFrequency
	UpdatedAt          time.Time
}

func Defaults() Settings {
	return Settings{
		SiteName:           "Salon Booking",
		SiteDescription:    "Salon and spa appointment booking",
		TimeZone:           "Asia/Shanghai",
		Language:           "zh-CN",
		MaintenanceMode:    false,
		AllowRegistration:  true,
		EmailNotifications: true,
		SMSNotifications:   false,
		AutoBackup:         true,
		BackupFrequency:    BackupDaily,
	}
}

// Patch carries the fields of a partial settings update; nil means unchanged.
type Patch struct {
	SiteName           *string
	SiteDescription    *string
	TimeZone           *string
	Language           *string
	MaintenanceMode    *bool
	AllowRegistration  *bool
	EmailNotifications *bool
	SMSNotifications   *bool
	AutoBackup         *bool
	BackupFrequency    *string
}

func (s Settings) Apply(p Patch) (Settings, error) {
	out := s
	if p.SiteName != nil {
		if *p.SiteName == "" {
			return s, ErrInvalidSiteName
		}
		out.SiteName = *p.SiteName
	}
	if p.SiteDescription != nil {
		out.SiteDescription = *p.SiteDescription
	}
	if p.TimeZone != nil {
		if _, err := time.LoadLocation(*p.TimeZone); err != nil || *p.TimeZone == "" {
			return s, ErrInvalidTimeZone
		}
		out.TimeZone = *p.TimeZone
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.MaintenanceMode != nil {
		out.MaintenanceMode = *p.MaintenanceMode
	}
	if p.AllowRegistration != nil {
		out.AllowRegistration = *p.AllowRegistration
	}
	if p.EmailNotifications != nil {
		out.EmailNotifications = *p.EmailNotifications
	}
	if p.SMSNotifications != nil {
		out.SMSNotifications = *p.SMSNotifications
	}
	if p.AutoBackup != nil {
		out.AutoBackup = *p.AutoBackup
	}
	if p.BackupFrequency != nil {
		f, err := NewBackupFrequency(*p.BackupFrequency)
		if err != nil {
			return s, err
		}
		out.BackupFrequency = f
	}
	return out, nil
}

// BackupDue reports whether a scheduled backup should run given the last completed one.
func (s Settings) BackupDue(lastCompleted *time.Time, now time.Time) bool {
	if !s.AutoBackup {
		return false
	}
	if lastCompleted == nil {
		return true
	}
	return now.Sub(*lastCompleted) >= s.BackupFrequency.Interval()
}
