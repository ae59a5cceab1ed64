package request

import (
	"salon-booking/internal/domain/settings"

	"github.com/jinzhu/copier"
)

type UpdateSettingsRequest struct {
	SiteName           *string `json:"siteName" binding:"omitempty,min=1,max=200"`
	SiteDescription    *string `json:"siteDescription"`
	TimeZone           *string `json:"timezone"`
	Language           *string `json:"language" binding:"omitempty,max=10"`
	MaintenanceMode    *bool   `json:"maintenanceMode"`
	AllowRegistration  *bool   `json:"allowRegistration"`
	EmailNotifications *bool   `json:"emailNotifications"`
	SMSNotifications   *bool   `json:"smsNotifications"`
	AutoBackup         *bool   `json:"autoBackup"`
	BackupFrequency    *string `json:"backupFrequency" binding:"omitempty,oneof=daily weekly monthly"`
}

func (r UpdateSettingsRequest) ToPatch() (settings.Patch, error) {
	var p settings.Patch
	if err := copier.Copy(&p, &r); err != nil {
		return settings.Patch{}, err
	}
	return p, nil
}
