package queries

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/salon"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
)

var ErrSalonNotFound = errs.New("salon not found")

type SalonReadStore interface {
	FindByID(ctx context.Context, id int64) (*SalonView, error)
	List(ctx context.Context, filter SalonFilter) ([]*SalonView, error)
}

type SalonQueries interface {
	GetByID(ctx context.Context, id int64) (*SalonView, error)
	List(ctx context.Context, filter SalonFilter) ([]*SalonView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*SalonView, error)
	// Slots enumerates the bookable labels for date; a non-working day yields an empty list.
	Slots(ctx context.Context, salonID int64, date string) (*SlotsView, error)
}

type salonQueriesImpl struct {
	readStore SalonReadStore
}

func NewSalonQueries(readStore SalonReadStore) SalonQueries {
	return &salonQueriesImpl{readStore: readStore}
}

func (q *salonQueriesImpl) GetByID(ctx context.Context, id int64) (*SalonView, error) {
	s, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	return s, nil
}

func (q *salonQueriesImpl) List(ctx context.Context, filter SalonFilter) ([]*SalonView, error) {
	sortBy, err := ValidateSalonSort(filter.SortBy)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	limit, err := ValidateLimit(filter.Limit, DefaultListLimit, MaxListLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if filter.Offset < 0 {
		return nil, errs.Mark(errs.New("offset must not be negative"), errs.ErrDomainValidation)
	}
	if filter.OfferStatus != nil {
		if _, err := salon.NewOfferStatus(*filter.OfferStatus); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	filter.SortBy = sortBy
	filter.Limit = limit
	return q.readStore.List(ctx, filter)
}

func (q *salonQueriesImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*SalonView, error) {
	return q.readStore.List(ctx, SalonFilter{
		OwnerID: &ownerID,
		SortBy:  "createdAt",
		Limit:   MaxListLimit,
	})
}

func (q *salonQueriesImpl) Slots(ctx context.Context, salonID int64, date string) (*SlotsView, error) {
	d, err := appointment.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := q.GetByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	out := &SlotsView{SalonID: salonID, Date: date, Slots: []string{}}

	days, err := salon.NewWorkingDays(view.WorkingDays)
	if err != nil {
		return nil, errs.Wrap(err, "stored working days are invalid")
	}
	if !days.Includes(d.Weekday()) {
		return out, nil
	}

	start, err := salon.ParseClockTime(view.StartTime)
	if err != nil {
		return nil, errs.Wrap(err, "stored start time is invalid")
	}
	end, err := salon.ParseClockTime(view.EndTime)
	if err != nil {
		return nil, errs.Wrap(err, "stored end time is invalid")
	}

	if slots := salon.EnumerateSlots(d, start, end, view.SlotDuration); slots != nil {
		out.Slots = slots
	}
	return out, nil
}
