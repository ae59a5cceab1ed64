//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/usecase/queries"
)

type AppointmentBuilder struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	SalonID      int64
	SalonName    string
	OwnerID      int64
	Date         string
	Time         string
	Status       string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:           100,
		CustomerID:   2,
		CustomerName: "Test User",
		SalonID:      10,
		SalonName:    "Blue Lotus Spa",
		OwnerID:      1,
		Date:         "2030-01-07",
		Time:         "10:00 AM",
		Status:       "booked",
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildPersisted() *appointment.Appointment {
	now := time.Now()
	return appointment.ReconstructAppointment(
		b.ID, b.CustomerID, b.SalonID, b.OwnerID,
		b.Date, b.Time,
		appointment.Status(b.Status),
		now, now,
	)
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		SalonID:    b.SalonID,
		OwnerID:    b.OwnerID,
		Date:       b.Date,
		Time:       b.Time,
		Status:     b.Status,
		Salon:      queries.Ref{ID: b.SalonID, Name: b.SalonName},
		Customer:   queries.Ref{ID: b.CustomerID, Name: b.CustomerName},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithCustomer(customerID int64) *AppointmentBuilder {
	b.CustomerID = customerID
	return b
}
