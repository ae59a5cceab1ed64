package queries

import (
	"context"

	"salon-booking/internal/domain/settings"
)

type SettingsReadStore interface {
	Get(ctx context.Context) (settings.Settings, error)
	ListBackups(ctx context.Context, limit int32) ([]*BackupLogView, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
	ListBackups(ctx context.Context) ([]*BackupLogView, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
}

func NewSettingsQueries(readStore SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	s, err := q.readStore.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ToSettingsView(s), nil
}

func (q *settingsQueriesImpl) ListBackups(ctx context.Context) ([]*BackupLogView, error) {
	return q.readStore.ListBackups(ctx, BackupLogLimit)
}

func ToSettingsView(s settings.Settings) *SettingsView {
	return &SettingsView{
		SiteName:           s.SiteName,
		SiteDescription:    s.SiteDescription,
		TimeZone:           s.TimeZone,
		Language:           s.Language,
		MaintenanceMode:    s.MaintenanceMode,
		AllowRegistration:  s.AllowRegistration,
		EmailNotifications: s.EmailNotifications,
		SMSNotifications:   s.SMSNotifications,
		AutoBackup:         s.AutoBackup,
		BackupFrequency:    string(s.BackupFrequency),
		UpdatedAt:          s.UpdatedAt,
	}
}
