//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/salon"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SalonBuilder struct {
	ID                 int64
	OwnerID            int64
	Name               string
	City               string
	WorkingDays        []string
	StartTime          string
	EndTime            string
	SlotDuration       int
	MaxBookingsPerSlot int
	MinServicePrice    float64
	MaxServicePrice    float64
	OfferStatus        string
}

func NewSalonBuilder() *SalonBuilder {
	return &SalonBuilder{
		ID:                 10,
		OwnerID:            1,
		Name:               "Blue Lotus Spa",
		City:               "Springfield",
		WorkingDays:        []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		StartTime:          "09:00",
		EndTime:            "17:00",
		SlotDuration:       60,
		MaxBookingsPerSlot: 2,
		MinServicePrice:    20,
		MaxServicePrice:    120,
		OfferStatus:        "active",
	}
}

func (b *SalonBuilder) With(mutate func(*SalonBuilder)) *SalonBuilder {
	mutate(b)
	return b
}

func (b *SalonBuilder) parts() (salon.Profile, salon.Schedule, salon.PriceRange, salon.OfferStatus, error) {
	days, err := salon.NewWorkingDays(b.WorkingDays)
	if err != nil {
		return salon.Profile{}, salon.Schedule{}, salon.PriceRange{}, "", err
	}
	start, err := salon.ParseClockTime(b.StartTime)
	if err != nil {
		return salon.Profile{}, salon.Schedule{}, salon.PriceRange{}, "", err
	}
	end, err := salon.ParseClockTime(b.EndTime)
	if err != nil {
		return salon.Profile{}, salon.Schedule{}, salon.PriceRange{}, "", err
	}
	prices, err := salon.NewPriceRange(b.MinServicePrice, b.MaxServicePrice)
	if err != nil {
		return salon.Profile{}, salon.Schedule{}, salon.PriceRange{}, "", err
	}
	status, err := salon.NewOfferStatus(b.OfferStatus)
	if err != nil {
		return salon.Profile{}, salon.Schedule{}, salon.PriceRange{}, "", err
	}

	profile := salon.Profile{Name: b.Name, City: b.City}
	schedule := salon.Schedule{
		WorkingDays:        days,
		Start:              start,
		End:                end,
		SlotDuration:       b.SlotDuration,
		MaxBookingsPerSlot: b.MaxBookingsPerSlot,
	}
	return profile, schedule, prices, status, nil
}

// Build methods
func (b *SalonBuilder) BuildDomain() (*salon.Salon, error) {
	profile, schedule, prices, status, err := b.parts()
	if err != nil {
		return nil, err
	}
	return salon.New(b.OwnerID, profile, schedule, prices, status)
}

// BuildPersisted panics on invalid builder state; use BuildDomain to test validation.
func (b *SalonBuilder) BuildPersisted() *salon.Salon {
	profile, schedule, prices, status, err := b.parts()
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return salon.Reconstruct(b.ID, b.OwnerID, profile, schedule, prices, status, now, now)
}

func (b *SalonBuilder) BuildInfra() query.Salon {
	now := time.Now()
	return query.Salon{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Name:               b.Name,
		City:               b.City,
		WorkingDays:        b.WorkingDays,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		SlotDuration:       int32(b.SlotDuration),
		MaxBookingsPerSlot: int32(b.MaxBookingsPerSlot),
		MinServicePrice:    pgconv.NumericFromFloat64(b.MinServicePrice),
		MaxServicePrice:    pgconv.NumericFromFloat64(b.MaxServicePrice),
		OfferStatus:        b.OfferStatus,
		CreatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *SalonBuilder) BuildView() *queries.SalonView {
	now := time.Now()
	return &queries.SalonView{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		Name:               b.Name,
		City:               b.City,
		WorkingDays:        b.WorkingDays,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		SlotDuration:       b.SlotDuration,
		MaxBookingsPerSlot: b.MaxBookingsPerSlot,
		MinServicePrice:    b.MinServicePrice,
		MaxServicePrice:    b.MaxServicePrice,
		OfferStatus:        b.OfferStatus,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Fluent builder methods
func (b *SalonBuilder) WithID(id int64) *SalonBuilder {
	b.ID = id
	return b
}

func (b *SalonBuilder) WithOwner(ownerID int64) *SalonBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *SalonBuilder) WithHours(start, end string, slotDuration int) *SalonBuilder {
	b.StartTime = start
	b.EndTime = end
	b.SlotDuration = slotDuration
	return b
}

func (b *SalonBuilder) WithCapacity(capacity int) *SalonBuilder {
	b.MaxBookingsPerSlot = capacity
	return b
}

func (b *SalonBuilder) WithWorkingDays(days ...string) *SalonBuilder {
	b.WorkingDays = days
	return b
}
