package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const salonColumns = `id, owner_id, name, description, address, city, state, zip, latitude, longitude,
       location_name, working_days, start_time, end_time, break_start_time, break_end_time,
       slot_duration, max_bookings_per_slot, min_service_price, max_service_price, offer_status,
       created_at, updated_at`

func scanSalon(row interface{ Scan(...any) error }) (Salon, error) {
	var i Salon
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Description,
		&i.Address,
		&i.City,
		&i.State,
		&i.Zip,
		&i.Latitude,
		&i.Longitude,
		&i.LocationName,
		&i.WorkingDays,
		&i.StartTime,
		&i.EndTime,
		&i.BreakStartTime,
		&i.BreakEndTime,
		&i.SlotDuration,
		&i.MaxBookingsPerSlot,
		&i.MinServicePrice,
		&i.MaxServicePrice,
		&i.OfferStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// SalonFields are the writable columns shared by create and update.
type SalonFields struct {
	Name               string
	Description        string
	Address            string
	City               string
	State              string
	Zip                string
	Latitude           pgtype.Float8
	Longitude          pgtype.Float8
	LocationName       string
	WorkingDays        []string
	StartTime          string
	EndTime            string
	BreakStartTime     pgtype.Text
	BreakEndTime       pgtype.Text
	SlotDuration       int32
	MaxBookingsPerSlot int32
	MinServicePrice    pgtype.Numeric
	MaxServicePrice    pgtype.Numeric
	OfferStatus        string
}

func (f SalonFields) args() []any {
	return []any{
		f.Name,
		f.Description,
		f.Address,
		f.City,
		f.State,
		f.Zip,
		f.Latitude,
		f.Longitude,
		f.LocationName,
		f.WorkingDays,
		f.StartTime,
		f.EndTime,
		f.BreakStartTime,
		f.BreakEndTime,
		f.SlotDuration,
		f.MaxBookingsPerSlot,
		f.MinServicePrice,
		f.MaxServicePrice,
		f.OfferStatus,
	}
}

const createSalon = `
INSERT INTO salons (
    owner_id, name, description, address, city, state, zip, latitude, longitude,
    location_name, working_days, start_time, end_time, break_start_time, break_end_time,
    slot_duration, max_bookings_per_slot, min_service_price, max_service_price, offer_status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING ` + salonColumns

type CreateSalonParams struct {
	OwnerID int64
	SalonFields
}

func (q *Queries) CreateSalon(ctx context.Context, db DBTX, arg CreateSalonParams) (Salon, error) {
	args := append([]any{arg.OwnerID}, arg.SalonFields.args()...)
	return scanSalon(db.QueryRow(ctx, createSalon, args...))
}

const updateSalon = `
UPDATE salons SET
    name = $2, description = $3, address = $4, city = $5, state = $6, zip = $7,
    latitude = $8, longitude = $9, location_name = $10, working_days = $11,
    start_time = $12, end_time = $13, break_start_time = $14, break_end_time = $15,
    slot_duration = $16, max_bookings_per_slot = $17, min_service_price = $18,
    max_service_price = $19, offer_status = $20, updated_at = NOW()
WHERE id = $1
RETURNING ` + salonColumns

type UpdateSalonParams struct {
	ID int64
	SalonFields
}

func (q *Queries) UpdateSalon(ctx context.Context, db DBTX, arg UpdateSalonParams) (Salon, error) {
	args := append([]any{arg.ID}, arg.SalonFields.args()...)
	return scanSalon(db.QueryRow(ctx, updateSalon, args...))
}

const deleteSalon = `DELETE FROM salons WHERE id = $1`

func (q *Queries) DeleteSalon(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, deleteSalon, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Row locks on a salon. FOR UPDATE serializes deletion against bookings holding FOR KEY SHARE.
const lockSalonForUpdate = `SELECT id FROM salons WHERE id = $1 FOR UPDATE`

func (q *Queries) LockSalonForUpdate(ctx context.Context, db DBTX, id int64) (int64, error) {
	var locked int64
	err := db.QueryRow(ctx, lockSalonForUpdate, id).Scan(&locked)
	return locked, err
}

const lockSalonKeyShare = `SELECT id FROM salons WHERE id = $1 FOR KEY SHARE`

func (q *Queries) LockSalonKeyShare(ctx context.Context, db DBTX, id int64) (int64, error) {
	var locked int64
	err := db.QueryRow(ctx, lockSalonKeyShare, id).Scan(&locked)
	return locked, err
}

const getSalonByID = `SELECT ` + salonColumns + ` FROM salons WHERE id = $1`

func (q *Queries) GetSalonByID(ctx context.Context, db DBTX, id int64) (Salon, error) {
	return scanSalon(db.QueryRow(ctx, getSalonByID, id))
}

// Sorting is resolved in SQL so the statement stays static.
const listSalons = `
SELECT ` + salonColumns + `
FROM salons
WHERE ($1::text IS NULL OR LOWER(city) = LOWER($1))
  AND ($2::text IS NULL OR offer_status = $2)
  AND ($3::bigint IS NULL OR owner_id = $3)
ORDER BY
    CASE WHEN $4::text = 'name' THEN name END ASC,
    CASE WHEN $4::text = 'minPrice' THEN min_service_price END ASC,
    CASE WHEN $4::text = 'maxPrice' THEN max_service_price END DESC,
    created_at DESC,
    id DESC
LIMIT $5 OFFSET $6`

type ListSalonsParams struct {
	City        pgtype.Text
	OfferStatus pgtype.Text
	OwnerID     pgtype.Int8
	SortBy      string
	Limit       int32
	Offset      int32
}

func (q *Queries) ListSalons(ctx context.Context, db DBTX, arg ListSalonsParams) ([]Salon, error) {
	rows, err := db.Query(ctx, listSalons,
		arg.City,
		arg.OfferStatus,
		arg.OwnerID,
		arg.SortBy,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Salon{}
	for rows.Next() {
		i, err := scanSalon(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countUpcomingBookedBySalon = `
SELECT COUNT(*) FROM appointments
WHERE salon_id = $1 AND status = 'booked' AND date >= $2`

type CountUpcomingBookedBySalonParams struct {
	SalonID  int64
	FromDate string
}

func (q *Queries) CountUpcomingBookedBySalon(ctx context.Context, db DBTX, arg CountUpcomingBookedBySalonParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countUpcomingBookedBySalon, arg.SalonID, arg.FromDate).Scan(&count)
	return count, err
}
