package converter

import (
	"fmt"

	"salon-booking/internal/domain/salon"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func SalonToFields(s *salon.Salon) query.SalonFields {
	p := s.Profile()
	sch := s.Schedule()
	return query.SalonFields{
		Name:               p.Name,
		Description:        p.Description,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Zip:                p.Zip,
		Latitude:           pgconv.Float8PtrToPgtype(p.Latitude),
		Longitude:          pgconv.Float8PtrToPgtype(p.Longitude),
		LocationName:       p.LocationName,
		WorkingDays:        sch.WorkingDays.Values(),
		StartTime:          sch.Start.String(),
		EndTime:            sch.End.String(),
		BreakStartTime:     clockToPgtype(sch.BreakStart),
		BreakEndTime:       clockToPgtype(sch.BreakEnd),
		SlotDuration:       int32(sch.SlotDuration),
		MaxBookingsPerSlot: int32(sch.MaxBookingsPerSlot),
		MinServicePrice:    pgconv.NumericFromFloat64(s.Prices().Min()),
		MaxServicePrice:    pgconv.NumericFromFloat64(s.Prices().Max()),
		OfferStatus:        s.OfferStatus().String(),
	}
}

// SalonFromInfra rebuilds the aggregate from a stored row. Rows are trusted to satisfy the
// table constraints, so only parse failures are reported.
func SalonFromInfra(row query.Salon) (*salon.Salon, error) {
	days, err := salon.NewWorkingDays(row.WorkingDays)
	if err != nil {
		return nil, err
	}
	start, err := salon.ParseClockTime(row.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := salon.ParseClockTime(row.EndTime)
	if err != nil {
		return nil, err
	}
	breakStart, err := clockFromPgtype(row.BreakStartTime)
	if err != nil {
		return nil, err
	}
	breakEnd, err := clockFromPgtype(row.BreakEndTime)
	if err != nil {
		return nil, err
	}
	minPrice, err := pgconv.Float64FromNumeric(row.MinServicePrice)
	if err != nil {
		return nil, fmt.Errorf("min service price: %w", err)
	}
	maxPrice, err := pgconv.Float64FromNumeric(row.MaxServicePrice)
	if err != nil {
		return nil, fmt.Errorf("max service price: %w", err)
	}
	prices, err := salon.NewPriceRange(minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	profile := salon.Profile{
		Name:         row.Name,
		Description:  row.Description,
		Address:      row.Address,
		City:         row.City,
		State:        row.State,
		Zip:          row.Zip,
		LocationName: row.LocationName,
		Latitude:     pgconv.Float8PtrFromPgtype(row.Latitude),
		Longitude:    pgconv.Float8PtrFromPgtype(row.Longitude),
	}
	schedule := salon.Schedule{
		WorkingDays:        days,
		Start:              start,
		End:                end,
		BreakStart:         breakStart,
		BreakEnd:           breakEnd,
		SlotDuration:       int(row.SlotDuration),
		MaxBookingsPerSlot: int(row.MaxBookingsPerSlot),
	}

	return salon.Reconstruct(
		row.ID,
		row.OwnerID,
		profile,
		schedule,
		prices,
		salon.OfferStatus(row.OfferStatus),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func clockToPgtype(c *salon.ClockTime) pgtype.Text {
	if c == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: c.String(), Valid: true}
}

func clockFromPgtype(t pgtype.Text) (*salon.ClockTime, error) {
	if !t.Valid {
		return nil, nil
	}
	c, err := salon.ParseClockTime(t.String)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
