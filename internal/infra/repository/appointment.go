package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/pgconv"
)

type AppointmentWriteQueries interface {
	AcquireSlotLock(ctx context.Context, db query.DBTX, key string) error
	CreateAppointment(ctx context.Context, db query.DBTX, arg query.CreateAppointmentParams) (query.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, db query.DBTX, arg query.UpdateAppointmentStatusParams) (query.Appointment, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      query.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db query.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

const salonForeignKey = "appointments_salon_id_fkey"

func SlotLockKey(salonID int64, date, slot string) string {
	return fmt.Sprintf("appointment-slot:%d:%s:%s", salonID, date, slot)
}

func (r *AppointmentRepository) LockSlot(ctx context.Context, tx query.DBTX, salonID int64, date, slot string) error {
	if err := r.queries.AcquireSlotLock(ctx, tx, SlotLockKey(salonID, date, slot)); err != nil {
		return infra.WrapRepoErr("failed to lock appointment slot", err)
	}
	return nil
}

func (r *AppointmentRepository) Create(ctx context.Context, tx query.DBTX, a *appointment.Appointment) (int64, error) {
	row, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		if infra.ConstraintName(err) == salonForeignKey {
			return 0, infra.WrapRepoErr("salon not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to create appointment", err)
	}
	return row.ID, nil
}

// UpdateStatus applies the transition only if the row still has status from; otherwise
// another request won and the result is a CONFLICT.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx query.DBTX, appointmentID int64, from, to appointment.Status) error {
	params := query.UpdateAppointmentStatusParams{
		ID:         appointmentID,
		Status:     to.String(),
		FromStatus: from.String(),
	}

	_, err := r.queries.UpdateAppointmentStatus(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("appointment status changed concurrently", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	return nil
}
