package request

import (
	"salon-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateSalonRequest struct {
	Name               string   `json:"name" binding:"required,max=200"`
	Description        string   `json:"description"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Zip                string   `json:"zip"`
	LocationName       string   `json:"locationName"`
	Latitude           *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude          *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	WorkingDays        []string `json:"workingDays" binding:"required,min=1,dive,required"`
	StartTime          string   `json:"startTime" binding:"required"`
	EndTime            string   `json:"endTime" binding:"required"`
	BreakStartTime     *string  `json:"breakStartTime"`
	BreakEndTime       *string  `json:"breakEndTime"`
	SlotDuration       int      `json:"slotDuration" binding:"required,min=1"`
	MaxBookingsPerSlot int      `json:"maxBookingsPerSlot" binding:"required,min=1"`
	MinServicePrice    float64  `json:"minServicePrice" binding:"min=0"`
	MaxServicePrice    float64  `json:"maxServicePrice" binding:"min=0"`
	OfferStatus        string   `json:"offerStatus" binding:"omitempty,oneof=active inactive"`
}

func (r CreateSalonRequest) ToCommand() (commands.SalonInput, error) {
	var in commands.SalonInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.SalonInput{}, err
	}
	return in, nil
}

// UpdateSalonRequest is a partial update; omitted fields keep their stored value.
type UpdateSalonRequest struct {
	Name               *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description        *string  `json:"description"`
	Address            *string  `json:"address"`
	City               *string  `json:"city"`
	State              *string  `json:"state"`
	Zip                *string  `json:"zip"`
	LocationName       *string  `json:"locationName"`
	Latitude           *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude          *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	WorkingDays        []string `json:"workingDays" binding:"omitempty,min=1,dive,required"`
	StartTime          *string  `json:"startTime"`
	EndTime            *string  `json:"endTime"`
	BreakStartTime     *string  `json:"breakStartTime"`
	BreakEndTime       *string  `json:"breakEndTime"`
	SlotDuration       *int     `json:"slotDuration" binding:"omitempty,min=1"`
	MaxBookingsPerSlot *int     `json:"maxBookingsPerSlot" binding:"omitempty,min=1"`
	MinServicePrice    *float64 `json:"minServicePrice" binding:"omitempty,min=0"`
	MaxServicePrice    *float64 `json:"maxServicePrice" binding:"omitempty,min=0"`
	OfferStatus        *string  `json:"offerStatus" binding:"omitempty,oneof=active inactive"`
}

func (r UpdateSalonRequest) ToCommand() (commands.SalonPatch, error) {
	var p commands.SalonPatch
	if err := copier.Copy(&p, &r); err != nil {
		return commands.SalonPatch{}, err
	}
	return p, nil
}

type ListSalonsQuery struct {
	City        *string `form:"city"`
	OfferStatus *string `form:"offerStatus" binding:"omitempty,oneof=active inactive"`
	SortBy      string  `form:"sortBy"`
	Limit       int32   `form:"limit"`
	Offset      int32   `form:"offset"`
}

type SlotsQuery struct {
	Date string `form:"date" binding:"required"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required"`
}
