package queries

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "user"
)

// UserView is the account as exposed to its owner; the password hash never leaves the read store.
type UserView struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Phone     *string    `json:"phone,omitempty"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type LoginLogView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	LoginTime time.Time `json:"loginTime"`
}

type SalonView struct {
	ID                 int64     `json:"id"`
	OwnerID            int64     `json:"ownerId"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Zip                string    `json:"zip"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	LocationName       string    `json:"locationName"`
	WorkingDays        []string  `json:"workingDays"`
	StartTime          string    `json:"startTime"`
	EndTime            string    `json:"endTime"`
	BreakStartTime     *string   `json:"breakStartTime,omitempty"`
	BreakEndTime       *string   `json:"breakEndTime,omitempty"`
	SlotDuration       int       `json:"slotDuration"`
	MaxBookingsPerSlot int       `json:"maxBookingsPerSlot"`
	MinServicePrice    float64   `json:"minServicePrice"`
	MaxServicePrice    float64   `json:"maxServicePrice"`
	OfferStatus        string    `json:"offerStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type SalonFilter struct {
	City        *string
	OfferStatus *string
	OwnerID     *int64
	SortBy      string
	Limit       int32
	Offset      int32
}

type SlotsView struct {
	SalonID int64    `json:"salonId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}

type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AppointmentView struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	SalonID    int64     `json:"salonId"`
	OwnerID    int64     `json:"ownerId"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	Salon      Ref       `json:"salon"`
	Customer   Ref       `json:"customer"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type AppointmentFilter struct {
	Status  *string
	Date    *string
	SalonID *int64
}

type AvailabilityView struct {
	SalonID        int64  `json:"salonId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Capacity       int    `json:"capacity"`
	RemainingSlots int    `json:"remainingSlots"`
}

type SettingsView struct {
	SiteName           string    `json:"siteName"`
	SiteDescription    string    `json:"siteDescription"`
	TimeZone           string    `json:"timezone"`
	Language           string    `json:"language"`
	MaintenanceMode    bool      `json:"maintenanceMode"`
	AllowRegistration  bool      `json:"allowRegistration"`
	EmailNotifications bool      `json:"emailNotifications"`
	SMSNotifications   bool      `json:"smsNotifications"`
	AutoBackup         bool      `json:"autoBackup"`
	BackupFrequency    string    `json:"backupFrequency"`
	UpdatedAt          time.Time `json:"updatedAt,omitzero"`
}

type BackupLogView struct {
	ID         int64     `json:"id"`
	BackupName string    `json:"backupName"`
	BackupSize int64     `json:"backupSize"`
	BackupType string    `json:"backupType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
