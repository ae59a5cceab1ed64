package salon

import (
	"time"
)

type Profile struct {
	Name         string
	Description  string
	Address      string
	City         string
	State        string
	Zip          string
	LocationName string
	Latitude     *float64
	Longitude    *float64
}

// Schedule describes when a salon takes appointments and how many per slot.
type Schedule struct {
	WorkingDays        WorkingDays
	Start              ClockTime
	End                ClockTime
	BreakStart         *ClockTime
	BreakEnd           *ClockTime
	SlotDuration       int
	MaxBookingsPerSlot int
}

func (s Schedule) Validate() error {
	if !s.Start.Before(s.End) {
		return ErrInvalidHours
	}
	if (s.BreakStart == nil) != (s.BreakEnd == nil) {
		return ErrInvalidBreak
	}
	if s.BreakStart != nil {
		bs, be := *s.BreakStart, *s.BreakEnd
		if !bs.Before(be) || bs.Before(s.Start) || s.End.Before(be) {
			return ErrInvalidBreak
		}
	}
	if s.SlotDuration <= 0 {
		return ErrInvalidSlotDuration
	}
	if s.MaxBookingsPerSlot < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

type Salon struct {
	id          int64
	ownerID     int64
	profile     Profile
	schedule    Schedule
	prices      PriceRange
	offerStatus OfferStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func New(ownerID int64, profile Profile, schedule Schedule, prices PriceRange, status OfferStatus) (*Salon, error) {
	s := &Salon{ownerID: ownerID, offerStatus: OfferActive}
	if err := s.Update(profile, schedule, prices, status); err != nil {
		return nil, err
	}
	return s, nil
}

func Reconstruct(
	id, ownerID int64,
	profile Profile,
	schedule Schedule,
	prices PriceRange,
	status OfferStatus,
	createdAt, updatedAt time.Time,
) *Salon {
	return &Salon{
		id:          id,
		ownerID:     ownerID,
		profile:     profile,
		schedule:    schedule,
		prices:      prices,
		offerStatus: status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the mutable state after re-validating every invariant.
func (s *Salon) Update(profile Profile, schedule Schedule, prices PriceRange, status OfferStatus) error {
	if profile.Name == "" {
		return ErrInvalidName
	}
	if err := schedule.Validate(); err != nil {
		return err
	}
	if status != OfferActive && status != OfferInactive {
		return ErrInvalidOfferStatus
	}
	s.profile = profile
	s.schedule = schedule
	s.prices = prices
	s.offerStatus = status
	return nil
}

func (s *Salon) IsOwnedBy(userID int64) bool {
	return s.ownerID == userID
}

func (s *Salon) ID() int64                { return s.id }
func (s *Salon) OwnerID() int64           { return s.ownerID }
func (s *Salon) Profile() Profile         { return s.profile }
func (s *Salon) Schedule() Schedule       { return s.schedule }
func (s *Salon) Prices() PriceRange       { return s.prices }
func (s *Salon) OfferStatus() OfferStatus { return s.offerStatus }
func (s *Salon) Capacity() int            { return s.schedule.MaxBookingsPerSlot }
func (s *Salon) CreatedAt() time.Time     { return s.createdAt }
func (s *Salon) UpdatedAt() time.Time     { return s.updatedAt }
