package response

import (
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
)

type SettingsResponse struct {
	SiteName           string `json:"siteName"`
	SiteDescription    string `json:"siteDescription"`
	TimeZone           string `json:"timezone"`
	Language           string `json:"language"`
	MaintenanceMode    bool   `json:"maintenanceMode"`
	AllowRegistration  bool   `json:"allowRegistration"`
	EmailNotifications bool   `json:"emailNotifications"`
	SMSNotifications   bool   `json:"smsNotifications"`
	AutoBackup         bool   `json:"autoBackup"`
	BackupFrequency    string `json:"backupFrequency"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse {
	return mustCopy[SettingsResponse](v)
}

type BackupResponse struct {
	ID         int64  `json:"id"`
	BackupName string `json:"backupName"`
	BackupSize int64  `json:"backupSize"`
	BackupType string `json:"backupType"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

func FromBackupResult(r *commands.BackupResult) *BackupResponse {
	return &BackupResponse{
		ID:         r.ID,
		BackupName: r.Name,
		BackupSize: r.Size,
		BackupType: r.Type,
		Status:     r.Status,
	}
}

func FromBackupLogs(items []*queries.BackupLogView) []*BackupResponse {
	return mustCopySlice[queries.BackupLogView, BackupResponse](items)
}
