package queries

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/shared"
)

type DashboardStats struct {
	TotalBookings     int `json:"totalBookings"`
	CanceledBookings  int `json:"canceledBookings"`
	CompletedBookings int `json:"completedBookings"`
	UpcomingBookings  int `json:"upcomingBookings"`
}

type DashboardQueries interface {
	// Stats covers every appointment for admins and only the caller's own for customers.
	Stats(ctx context.Context, actor shared.Actor) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	readStore AppointmentReadStore
	clock     clock.Clock
	booking   config.BookingConfig
}

func NewDashboardQueries(readStore AppointmentReadStore, clk clock.Clock, booking config.BookingConfig) DashboardQueries {
	return &dashboardQueriesImpl{
		readStore: readStore,
		clock:     clk,
		booking:   booking,
	}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context, actor shared.Actor) (*DashboardStats, error) {
	var scope *int64
	if !actor.IsAdmin() {
		scope = &actor.ID
	}

	items, err := q.readStore.Snapshots(ctx, scope)
	if err != nil {
		return nil, err
	}

	s := appointment.Summarize(items, clock.Today(q.clock, q.booking.Location()))
	return &DashboardStats{
		TotalBookings:     s.Total,
		CanceledBookings:  s.Canceled,
		CompletedBookings: s.Completed,
		UpcomingBookings:  s.Upcoming,
	}, nil
}
