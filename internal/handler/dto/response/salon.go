package response

import (
	"salon-booking/internal/usecase/queries"
)

type SalonResponse struct {
	ID                 int64    `json:"id"`
	OwnerID            int64    `json:"ownerId"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Zip                string   `json:"zip"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	LocationName       string   `json:"locationName"`
	WorkingDays        []string `json:"workingDays"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	BreakStartTime     *string  `json:"breakStartTime,omitempty"`
	BreakEndTime       *string  `json:"breakEndTime,omitempty"`
	SlotDuration       int      `json:"slotDuration"`
	MaxBookingsPerSlot int      `json:"maxBookingsPerSlot"`
	MinServicePrice    float64  `json:"minServicePrice"`
	MaxServicePrice    float64  `json:"maxServicePrice"`
	OfferStatus        string   `json:"offerStatus"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

func FromSalonView(v *queries.SalonView) *SalonResponse {
	return mustCopy[SalonResponse](v)
}

func FromSalonList(items []*queries.SalonView) []*SalonResponse {
	return mustCopySlice[queries.SalonView, SalonResponse](items)
}

type SlotsResponse struct {
	SalonID int64    `json:"salonId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	slots := v.Slots
	if slots == nil {
		slots = []string{}
	}
	return &SlotsResponse{SalonID: v.SalonID, Date: v.Date, Slots: slots}
}

type AvailabilityResponse struct {
	SalonID        int64  `json:"salonId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Capacity       int    `json:"capacity"`
	RemainingSlots int    `json:"remainingSlots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return mustCopy[AvailabilityResponse](v)
}
