package repository

import (
	"context"

	"salon-booking/internal/domain/salon"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/pgconv"
)

type SalonWriteQueries interface {
	CreateSalon(ctx context.Context, db query.DBTX, arg query.CreateSalonParams) (query.Salon, error)
	UpdateSalon(ctx context.Context, db query.DBTX, arg query.UpdateSalonParams) (query.Salon, error)
	DeleteSalon(ctx context.Context, db query.DBTX, id int64) (int64, error)
	LockSalonForUpdate(ctx context.Context, db query.DBTX, id int64) (int64, error)
	LockSalonKeyShare(ctx context.Context, db query.DBTX, id int64) (int64, error)
}

type SalonRepository struct {
	queries SalonWriteQueries
	db      query.DBTX
}

func NewSalonRepository(queries SalonWriteQueries, db query.DBTX) *SalonRepository {
	return &SalonRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SalonRepository) Create(ctx context.Context, tx query.DBTX, s *salon.Salon) (int64, error) {
	params := query.CreateSalonParams{
		OwnerID:     s.OwnerID(),
		SalonFields: converter.SalonToFields(s),
	}

	row, err := r.queries.CreateSalon(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create salon", err)
	}
	return row.ID, nil
}

func (r *SalonRepository) Update(ctx context.Context, tx query.DBTX, s *salon.Salon) error {
	params := query.UpdateSalonParams{
		ID:          s.ID(),
		SalonFields: converter.SalonToFields(s),
	}

	_, err := r.queries.UpdateSalon(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update salon", err)
	}
	return nil
}

func (r *SalonRepository) Delete(ctx context.Context, tx query.DBTX, salonID int64) error {
	affected, err := r.queries.DeleteSalon(ctx, tx, salonID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete salon", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("salon not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockForDelete takes an exclusive row lock, waiting for in-flight bookings on the salon.
func (r *SalonRepository) LockForDelete(ctx context.Context, tx query.DBTX, salonID int64) error {
	if _, err := r.queries.LockSalonForUpdate(ctx, tx, salonID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock salon", err)
	}
	return nil
}

// LockForBooking keeps the salon row from being deleted until the booking commits.
// Concurrent bookings and profile updates are not blocked.
func (r *SalonRepository) LockForBooking(ctx context.Context, tx query.DBTX, salonID int64) error {
	if _, err := r.queries.LockSalonKeyShare(ctx, tx, salonID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock salon", err)
	}
	return nil
}
