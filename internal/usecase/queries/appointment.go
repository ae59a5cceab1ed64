package queries

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrAppointmentNotFound  = errs.New("appointment not found")
	ErrAppointmentForbidden = errs.New("appointment belongs to another user")
	ErrNoAvailableSlots     = appointment.ErrNoAvailableSlots
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*AppointmentView, error)
	ListByOwner(ctx context.Context, ownerID int64, filter AppointmentFilter) ([]*AppointmentView, error)
	CountForSlot(ctx context.Context, salonID int64, date, slot string, excludeCanceled bool) (int, error)
	Snapshots(ctx context.Context, customerID *int64) ([]appointment.Snapshot, error)
}

type AppointmentQueries interface {
	// CheckAvailability returns the remaining capacity of a slot, or ErrNoAvailableSlots with
	// a zero remainder when the slot is full.
	CheckAvailability(ctx context.Context, salonID int64, date, slot string) (*AvailabilityView, error)
	GetByID(ctx context.Context, actor shared.Actor, id int64) (*AppointmentView, error)
	GetByIDSystem(ctx context.Context, id int64) (*AppointmentView, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]*AppointmentView, error)
	ListForOwner(ctx context.Context, ownerID int64, filter AppointmentFilter) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
	salons    SalonReadStore
	booking   config.BookingConfig
}

func NewAppointmentQueries(readStore AppointmentReadStore, salons SalonReadStore, booking config.BookingConfig) AppointmentQueries {
	return &appointmentQueriesImpl{
		readStore: readStore,
		salons:    salons,
		booking:   booking,
	}
}

func (q *appointmentQueriesImpl) CheckAvailability(ctx context.Context, salonID int64, date, slot string) (*AvailabilityView, error) {
	if _, err := appointment.ParseDate(date); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if slot == "" {
		return nil, errs.Mark(appointment.ErrInvalidTime, errs.ErrDomainValidation)
	}

	s, err := q.salons.FindByID(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}

	count, err := q.readStore.CountForSlot(ctx, salonID, date, slot, q.booking.ReleaseCanceledSlots)
	if err != nil {
		return nil, err
	}

	a, err := appointment.CheckAvailability(s.MaxBookingsPerSlot, count)
	view := &AvailabilityView{
		SalonID:        salonID,
		Date:           date,
		Time:           slot,
		Capacity:       a.Capacity,
		RemainingSlots: a.Remaining,
	}
	return view, err
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id int64) (*AppointmentView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.CustomerID == actor.ID || (actor.IsAdmin() && view.OwnerID == actor.ID) {
		return view, nil
	}
	return nil, ErrAppointmentForbidden
}

// GetByIDSystem skips the actor check; used for read-after-write and idempotent replays.
func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id int64) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListForCustomer(ctx context.Context, customerID int64) ([]*AppointmentView, error) {
	return q.readStore.ListByCustomer(ctx, customerID)
}

func (q *appointmentQueriesImpl) ListForOwner(ctx context.Context, ownerID int64, filter AppointmentFilter) ([]*AppointmentView, error) {
	if filter.Status != nil {
		if _, err := appointment.NewStatus(*filter.Status); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if filter.Date != nil {
		if _, err := appointment.ParseDate(*filter.Date); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	return q.readStore.ListByOwner(ctx, ownerID, filter)
}
