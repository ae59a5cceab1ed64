package commands

import (
	"context"

	"salon-booking/internal/domain/salon"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/shared"
)

var (
	ErrSalonNotFound                = errs.New("salon not found")
	ErrSalonForbidden               = errs.New("salon is managed by another owner")
	ErrSalonHasUpcomingAppointments = errs.New("salon has upcoming booked appointments")
)

type SalonInput struct {
	Name               string
	Description        string
	Address            string
	City               string
	State              string
	Zip                string
	LocationName       string
	Latitude           *float64
	Longitude          *float64
	WorkingDays        []string
	StartTime          string
	EndTime            string
	BreakStartTime     *string
	BreakEndTime       *string
	SlotDuration       int
	MaxBookingsPerSlot int
	MinServicePrice    float64
	MaxServicePrice    float64
	OfferStatus        string
}

// SalonPatch is a partial update; nil fields keep the stored value.
type SalonPatch struct {
	Name               *string
	Description        *string
	Address            *string
	City               *string
	State              *string
	Zip                *string
	LocationName       *string
	Latitude           *float64
	Longitude          *float64
	WorkingDays        []string
	StartTime          *string
	EndTime            *string
	BreakStartTime     *string
	BreakEndTime       *string
	SlotDuration       *int
	MaxBookingsPerSlot *int
	MinServicePrice    *float64
	MaxServicePrice    *float64
	OfferStatus        *string
}

type SalonCommands interface {
	Create(ctx context.Context, actor shared.Actor, in SalonInput) (int64, error)
	Update(ctx context.Context, actor shared.Actor, salonID int64, p SalonPatch) error
	Delete(ctx context.Context, actor shared.Actor, salonID int64) error
}

type salonCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	booking config.BookingConfig
}

func NewSalonCommands(uow shared.UnitOfWork, clk clock.Clock, booking config.BookingConfig) SalonCommands {
	return &salonCommandsImpl{uow: uow, clock: clk, booking: booking}
}

func (uc *salonCommandsImpl) Create(ctx context.Context, actor shared.Actor, in SalonInput) (int64, error) {
	if !actor.IsAdmin() {
		return 0, errs.ErrForbidden
	}

	profile, schedule, prices, status, err := in.toDomain()
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	s, err := salon.New(actor.ID, profile, schedule, prices, status)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	return shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Salons().Create(ctx, tx.DB(), s)
	})
}

func (uc *salonCommandsImpl) Update(ctx context.Context, actor shared.Actor, salonID int64, p SalonPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := uc.loadOwned(ctx, tx, actor, salonID)
		if err != nil {
			return err
		}

		in := p.applyTo(inputFromSalon(s))
		profile, schedule, prices, status, err := in.toDomain()
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := s.Update(profile, schedule, prices, status); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return tx.Salons().Update(ctx, tx.DB(), s)
	})
}

// Delete refuses while booked appointments dated today or later exist; past rows cascade.
func (uc *salonCommandsImpl) Delete(ctx context.Context, actor shared.Actor, salonID int64) error {
	today := clock.Today(uc.clock, uc.booking.Location())

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Held until commit so no booking can land between the count and the delete.
		if err := tx.Salons().LockForDelete(ctx, tx.DB(), salonID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSalonNotFound
			}
			return err
		}
		if _, err := uc.loadOwned(ctx, tx, actor, salonID); err != nil {
			return err
		}

		upcoming, err := tx.Reads().CountUpcomingBookings(ctx, salonID, today)
		if err != nil {
			return err
		}
		if upcoming > 0 {
			return ErrSalonHasUpcomingAppointments
		}

		if err := tx.Salons().Delete(ctx, tx.DB(), salonID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSalonNotFound
			}
			return err
		}
		return nil
	})
}

func (uc *salonCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, actor shared.Actor, salonID int64) (*salon.Salon, error) {
	s, err := tx.Reads().SalonByID(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() || !s.IsOwnedBy(actor.ID) {
		return nil, ErrSalonForbidden
	}
	return s, nil
}

func (in SalonInput) toDomain() (salon.Profile, salon.Schedule, salon.PriceRange, salon.OfferStatus, error) {
	var (
		profile  salon.Profile
		schedule salon.Schedule
	)

	days, err := salon.NewWorkingDays(in.WorkingDays)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}
	start, err := salon.ParseClockTime(in.StartTime)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}
	end, err := salon.ParseClockTime(in.EndTime)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}
	breakStart, err := parseOptionalClock(in.BreakStartTime)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}
	breakEnd, err := parseOptionalClock(in.BreakEndTime)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}
	prices, err := salon.NewPriceRange(in.MinServicePrice, in.MaxServicePrice)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}
	status, err := salon.NewOfferStatus(in.OfferStatus)
	if err != nil {
		return profile, schedule, salon.PriceRange{}, "", err
	}

	profile = salon.Profile{
		Name:         in.Name,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Zip:          in.Zip,
		LocationName: in.LocationName,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
	}
	schedule = salon.Schedule{
		WorkingDays:        days,
		Start:              start,
		End:                end,
		BreakStart:         breakStart,
		BreakEnd:           breakEnd,
		SlotDuration:       in.SlotDuration,
		MaxBookingsPerSlot: in.MaxBookingsPerSlot,
	}
	return profile, schedule, prices, status, nil
}

func parseOptionalClock(s *string) (*salon.ClockTime, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	c, err := salon.ParseClockTime(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func inputFromSalon(s *salon.Salon) SalonInput {
	profile, schedule, prices := s.Profile(), s.Schedule(), s.Prices()
	in := SalonInput{
		Name:               profile.Name,
		Description:        profile.Description,
		Address:            profile.Address,
		City:               profile.City,
		State:              profile.State,
		Zip:                profile.Zip,
		LocationName:       profile.LocationName,
		Latitude:           profile.Latitude,
		Longitude:          profile.Longitude,
		WorkingDays:        schedule.WorkingDays.Values(),
		StartTime:          schedule.Start.String(),
		EndTime:            schedule.End.String(),
		SlotDuration:       schedule.SlotDuration,
		MaxBookingsPerSlot: schedule.MaxBookingsPerSlot,
		MinServicePrice:    prices.Min(),
		MaxServicePrice:    prices.Max(),
		OfferStatus:        s.OfferStatus().String(),
	}
	if schedule.BreakStart != nil && schedule.BreakEnd != nil {
		bs, be := schedule.BreakStart.String(), schedule.BreakEnd.String()
		in.BreakStartTime, in.BreakEndTime = &bs, &be
	}
	return in
}

func (p SalonPatch) applyTo(in SalonInput) SalonInput {
	in.Name = patch.Coalesce(p.Name, in.Name)
	in.Description = patch.Coalesce(p.Description, in.Description)
	in.Address = patch.Coalesce(p.Address, in.Address)
	in.City = patch.Coalesce(p.City, in.City)
	in.State = patch.Coalesce(p.State, in.State)
	in.Zip = patch.Coalesce(p.Zip, in.Zip)
	in.LocationName = patch.Coalesce(p.LocationName, in.LocationName)
	if p.Latitude != nil {
		in.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		in.Longitude = p.Longitude
	}
	in.WorkingDays = patch.CoalesceSlice(p.WorkingDays, in.WorkingDays)
	in.StartTime = patch.Coalesce(p.StartTime, in.StartTime)
	in.EndTime = patch.Coalesce(p.EndTime, in.EndTime)
	in.BreakStartTime = patch.CoalescePtr(p.BreakStartTime, in.BreakStartTime)
	in.BreakEndTime = patch.CoalescePtr(p.BreakEndTime, in.BreakEndTime)
	in.SlotDuration = patch.Coalesce(p.SlotDuration, in.SlotDuration)
	in.MaxBookingsPerSlot = patch.Coalesce(p.MaxBookingsPerSlot, in.MaxBookingsPerSlot)
	in.MinServicePrice = patch.Coalesce(p.MinServicePrice, in.MinServicePrice)
	in.MaxServicePrice = patch.Coalesce(p.MaxServicePrice, in.MaxServicePrice)
	in.OfferStatus = patch.Coalesce(p.OfferStatus, in.OfferStatus)
	return in
}
