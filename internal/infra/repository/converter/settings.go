package converter

import (
	"salon-booking/internal/domain/settings"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
)

func SettingsToUpsertParams(s settings.Settings) query.UpsertSystemSettingsParams {
	return query.UpsertSystemSettingsParams{
		SiteName:           s.SiteName,
		SiteDescription:    s.SiteDescription,
		Timezone:           s.TimeZone,
		Language:           s.Language,
		MaintenanceMode:    s.MaintenanceMode,
		AllowRegistration:  s.AllowRegistration,
		EmailNotifications: s.EmailNotifications,
		SmsNotifications:   s.SMSNotifications,
		AutoBackup:         s.AutoBackup,
		BackupFrequency:    string(s.BackupFrequency),
	}
}

func SettingsFromInfra(row query.SystemSetting) settings.Settings {
	return settings.Settings{
		SiteName:           row.SiteName,
		SiteDescription:    row.SiteDescription,
		TimeZone:           row.Timezone,
		Language:           row.Language,
		MaintenanceMode:    row.MaintenanceMode,
		AllowRegistration:  row.AllowRegistration,
		EmailNotifications: row.EmailNotifications,
		SMSNotifications:   row.SmsNotifications,
		AutoBackup:         row.AutoBackup,
		BackupFrequency:    settings.BackupFrequency(row.BackupFrequency),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
