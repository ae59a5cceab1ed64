package response

import (
	"salon-booking/internal/usecase/queries"
)

type RefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AppointmentResponse struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customerId"`
	SalonID    int64       `json:"salonId"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	Status     string      `json:"status"`
	Salon      RefResponse `json:"salon"`
	Customer   RefResponse `json:"customer"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return mustCopy[AppointmentResponse](v)
}

func FromAppointmentList(items []*queries.AppointmentView) []*AppointmentResponse {
	return mustCopySlice[queries.AppointmentView, AppointmentResponse](items)
}

type DashboardResponse struct {
	TotalBookings     int `json:"totalBookings"`
	CanceledBookings  int `json:"canceledBookings"`
	CompletedBookings int `json:"completedBookings"`
	UpcomingBookings  int `json:"upcomingBookings"`
}

func FromDashboardStats(s *queries.DashboardStats) *DashboardResponse {
	return mustCopy[DashboardResponse](s)
}
