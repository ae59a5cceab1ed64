package request

import (
	"salon-booking/internal/usecase/commands"
)

type BookAppointmentRequest struct {
	SalonID int64  `json:"salonId" binding:"required,min=1"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

// ToCommand books on behalf of the authenticated caller; a customer id in the body is never trusted.
func (r BookAppointmentRequest) ToCommand(customerID int64) commands.BookRequest {
	return commands.BookRequest{
		CustomerID: customerID,
		SalonID:    r.SalonID,
		Date:       r.Date,
		Time:       r.Time,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=booked completed canceled"`
}

type OwnerAppointmentsQuery struct {
	Status  *string `form:"status" binding:"omitempty,oneof=booked completed canceled"`
	Date    *string `form:"date"`
	SalonID *int64  `form:"salonId" binding:"omitempty,min=1"`
}
