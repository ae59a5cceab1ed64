package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentColumns = `id, user_id, salon_id, owner_id, date, time, status, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (Appointment, error) {
	var i Appointment
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.SalonID,
		&i.OwnerID,
		&i.Date,
		&i.Time,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// Serializes bookings of one (salon, date, time) slot until the surrounding transaction ends.
const acquireSlotLock = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

func (q *Queries) AcquireSlotLock(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, acquireSlotLock, key)
	return err
}

const countAppointmentsForSlot = `
SELECT COUNT(*) FROM appointments
WHERE salon_id = $1 AND date = $2 AND time = $3
  AND (NOT $4::boolean OR status <> 'canceled')`

type CountAppointmentsForSlotParams struct {
	SalonID         int64
	Date            string
	Time            string
	ExcludeCanceled bool
}

func (q *Queries) CountAppointmentsForSlot(ctx context.Context, db DBTX, arg CountAppointmentsForSlotParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countAppointmentsForSlot,
		arg.SalonID,
		arg.Date,
		arg.Time,
		arg.ExcludeCanceled,
	).Scan(&count)
	return count, err
}

const createAppointment = `
INSERT INTO appointments (user_id, salon_id, owner_id, date, time, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + appointmentColumns

type CreateAppointmentParams struct {
	UserID  int64
	SalonID int64
	OwnerID int64
	Date    string
	Time    string
	Status  string
}

func (q *Queries) CreateAppointment(ctx context.Context, db DBTX, arg CreateAppointmentParams) (Appointment, error) {
	row := db.QueryRow(ctx, createAppointment,
		arg.UserID,
		arg.SalonID,
		arg.OwnerID,
		arg.Date,
		arg.Time,
		arg.Status,
	)
	return scanAppointment(row)
}

const getAppointmentByID = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

func (q *Queries) GetAppointmentByID(ctx context.Context, db DBTX, id int64) (Appointment, error) {
	return scanAppointment(db.QueryRow(ctx, getAppointmentByID, id))
}

// Only succeeds while the row still has the expected status.
const updateAppointmentStatus = `
UPDATE appointments SET status = $2, updated_at = NOW()
WHERE id = $1 AND status = $3
RETURNING ` + appointmentColumns

type UpdateAppointmentStatusParams struct {
	ID         int64
	Status     string
	FromStatus string
}

func (q *Queries) UpdateAppointmentStatus(ctx context.Context, db DBTX, arg UpdateAppointmentStatusParams) (Appointment, error) {
	return scanAppointment(db.QueryRow(ctx, updateAppointmentStatus, arg.ID, arg.Status, arg.FromStatus))
}

type AppointmentListRow struct {
	ID           int64
	UserID       int64
	SalonID      int64
	OwnerID      int64
	Date         string
	Time         string
	Status       string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
	SalonName    string
	CustomerName string
}

func scanAppointmentListRows(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]AppointmentListRow, error) {
	items := []AppointmentListRow{}
	for rows.Next() {
		var i AppointmentListRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.SalonID,
			&i.OwnerID,
			&i.Date,
			&i.Time,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.SalonName,
			&i.CustomerName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const appointmentListSelect = `
SELECT a.id, a.user_id, a.salon_id, a.owner_id, a.date, a.time, a.status, a.created_at, a.updated_at,
       s.name AS salon_name, u.name AS customer_name
FROM appointments a
JOIN salons s ON s.id = a.salon_id
JOIN accounts u ON u.id = a.user_id`

const getAppointmentViewByID = appointmentListSelect + `
WHERE a.id = $1`

func (q *Queries) GetAppointmentViewByID(ctx context.Context, db DBTX, id int64) (AppointmentListRow, error) {
	var i AppointmentListRow
	err := db.QueryRow(ctx, getAppointmentViewByID, id).Scan(
		&i.ID,
		&i.UserID,
		&i.SalonID,
		&i.OwnerID,
		&i.Date,
		&i.Time,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.SalonName,
		&i.CustomerName,
	)
	return i, err
}

const listAppointmentsByCustomer = appointmentListSelect + `
WHERE a.user_id = $1
ORDER BY a.created_at DESC, a.id DESC`

func (q *Queries) ListAppointmentsByCustomer(ctx context.Context, db DBTX, userID int64) ([]AppointmentListRow, error) {
	rows, err := db.Query(ctx, listAppointmentsByCustomer, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointmentListRows(rows)
}

const listAppointmentsByOwner = appointmentListSelect + `
WHERE a.owner_id = $1
  AND ($2::text IS NULL OR a.status = $2)
  AND ($3::text IS NULL OR a.date = $3)
  AND ($4::bigint IS NULL OR a.salon_id = $4)
ORDER BY a.created_at DESC, a.id DESC`

type ListAppointmentsByOwnerParams struct {
	OwnerID int64
	Status  pgtype.Text
	Date    pgtype.Text
	SalonID pgtype.Int8
}

func (q *Queries) ListAppointmentsByOwner(ctx context.Context, db DBTX, arg ListAppointmentsByOwnerParams) ([]AppointmentListRow, error) {
	rows, err := db.Query(ctx, listAppointmentsByOwner,
		arg.OwnerID,
		arg.Status,
		arg.Date,
		arg.SalonID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointmentListRows(rows)
}

const listAppointmentStatusDates = `
SELECT status, date FROM appointments
WHERE ($1::bigint IS NULL OR user_id = $1)`

type AppointmentStatusDateRow struct {
	Status string
	Date   string
}

// ListAppointmentStatusDates returns every appointment when userID is NULL.
func (q *Queries) ListAppointmentStatusDates(ctx context.Context, db DBTX, userID pgtype.Int8) ([]AppointmentStatusDateRow, error) {
	rows, err := db.Query(ctx, listAppointmentStatusDates, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AppointmentStatusDateRow{}
	for rows.Next() {
		var i AppointmentStatusDateRow
		if err := rows.Scan(&i.Status, &i.Date); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
