package readstore

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadQueries interface {
	GetAppointmentViewByID(ctx context.Context, db query.DBTX, id int64) (query.AppointmentListRow, error)
	ListAppointmentsByCustomer(ctx context.Context, db query.DBTX, userID int64) ([]query.AppointmentListRow, error)
	ListAppointmentsByOwner(ctx context.Context, db query.DBTX, arg query.ListAppointmentsByOwnerParams) ([]query.AppointmentListRow, error)
	CountAppointmentsForSlot(ctx context.Context, db query.DBTX, arg query.CountAppointmentsForSlotParams) (int64, error)
	ListAppointmentStatusDates(ctx context.Context, db query.DBTX, userID pgtype.Int8) ([]query.AppointmentStatusDateRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      query.DBTX
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db query.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return toAppointmentView(row), nil
}

func (r *AppointmentReadStore) ListByCustomer(ctx context.Context, customerID int64) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer appointments", err)
	}
	return toAppointmentViews(rows), nil
}

func (r *AppointmentReadStore) ListByOwner(ctx context.Context, ownerID int64, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	params := query.ListAppointmentsByOwnerParams{
		OwnerID: ownerID,
		Status:  pgconv.StringPtrToPgtype(filter.Status),
		Date:    pgconv.StringPtrToPgtype(filter.Date),
		SalonID: pgconv.Int8PtrToPgtype(filter.SalonID),
	}

	rows, err := r.queries.ListAppointmentsByOwner(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner appointments", err)
	}
	return toAppointmentViews(rows), nil
}

func (r *AppointmentReadStore) CountForSlot(ctx context.Context, salonID int64, date, slot string, excludeCanceled bool) (int, error) {
	params := query.CountAppointmentsForSlotParams{
		SalonID:         salonID,
		Date:            date,
		Time:            slot,
		ExcludeCanceled: excludeCanceled,
	}

	count, err := r.queries.CountAppointmentsForSlot(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot appointments", err)
	}
	return int(count), nil
}

// Snapshots returns status and date of every appointment, or only the customer's when customerID is set.
func (r *AppointmentReadStore) Snapshots(ctx context.Context, customerID *int64) ([]appointment.Snapshot, error) {
	rows, err := r.queries.ListAppointmentStatusDates(ctx, r.db, pgconv.Int8PtrToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointment snapshots", err)
	}

	result := make([]appointment.Snapshot, len(rows))
	for i, row := range rows {
		result[i] = appointment.Snapshot{Status: appointment.Status(row.Status), Date: row.Date}
	}
	return result, nil
}

func toAppointmentViews(rows []query.AppointmentListRow) []*queries.AppointmentView {
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(row)
	}
	return result
}

func toAppointmentView(row query.AppointmentListRow) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:         row.ID,
		CustomerID: row.UserID,
		SalonID:    row.SalonID,
		OwnerID:    row.OwnerID,
		Date:       row.Date,
		Time:       row.Time,
		Status:     row.Status,
		Salon:      queries.Ref{ID: row.SalonID, Name: row.SalonName},
		Customer:   queries.Ref{ID: row.UserID, Name: row.CustomerName},
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
