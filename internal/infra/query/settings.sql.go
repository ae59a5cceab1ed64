package query

import (
	"context"
)

const systemSettingColumns = `site_name, site_description, timezone, language, maintenance_mode,
       allow_registration, email_notifications, sms_notifications, auto_backup, backup_frequency,
       created_at, updated_at`

func scanSystemSetting(row interface{ Scan(...any) error }) (SystemSetting, error) {
	var i SystemSetting
	err := row.Scan(
		&i.SiteName,
		&i.SiteDescription,
		&i.Timezone,
		&i.Language,
		&i.MaintenanceMode,
		&i.AllowRegistration,
		&i.EmailNotifications,
		&i.SmsNotifications,
		&i.AutoBackup,
		&i.BackupFrequency,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getSystemSettings = `SELECT ` + systemSettingColumns + ` FROM system_settings WHERE id = 1`

func (q *Queries) GetSystemSettings(ctx context.Context, db DBTX) (SystemSetting, error) {
	return scanSystemSetting(db.QueryRow(ctx, getSystemSettings))
}

const upsertSystemSettings = `
INSERT INTO system_settings (
    id, site_name, site_description, timezone, language, maintenance_mode,
    allow_registration, email_notifications, sms_notifications, auto_backup, backup_frequency
) VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    site_name = EXCLUDED.site_name,
    site_description = EXCLUDED.site_description,
    timezone = EXCLUDED.timezone,
    language = EXCLUDED.language,
    maintenance_mode = EXCLUDED.maintenance_mode,
    allow_registration = EXCLUDED.allow_registration,
    email_notifications = EXCLUDED.email_notifications,
    sms_notifications = EXCLUDED.sms_notifications,
    auto_backup = EXCLUDED.auto_backup,
    backup_frequency = EXCLUDED.backup_frequency,
    updated_at = NOW()
RETURNING ` + systemSettingColumns

type UpsertSystemSettingsParams struct {
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
}

func (q *Queries) UpsertSystemSettings(ctx context.Context, db DBTX, arg UpsertSystemSettingsParams) (SystemSetting, error) {
	row := db.QueryRow(ctx, upsertSystemSettings,
		arg.SiteName,
		arg.SiteDescription,
		arg.Timezone,
		arg.Language,
		arg.MaintenanceMode,
		arg.AllowRegistration,
		arg.EmailNotifications,
		arg.SmsNotifications,
		arg.AutoBackup,
		arg.BackupFrequency,
	)
	return scanSystemSetting(row)
}
