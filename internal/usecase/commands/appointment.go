package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/salon"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	bookEndpoint        = "POST /api/appointments"
	idempotencyLifetime = 24 * time.Hour
)

var (
	ErrAppointmentNotFound       = errs.New("appointment not found")
	ErrAppointmentForbidden      = errs.New("appointment belongs to another user")
	ErrAppointmentStatusConflict = errs.New("appointment status was changed by another request")
)

type BookRequest struct {
	CustomerID int64  `json:"customerId"`
	SalonID    int64  `json:"salonId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type BookResult struct {
	Appointment *queries.AppointmentView
	IsReplayed  bool
}

type AppointmentCommands interface {
	// Book reserves one unit of a slot's capacity. The capacity check and the insert run
	// under a per-slot lock so concurrent bookings cannot exceed the salon's limit.
	Book(ctx context.Context, req BookRequest, idempotencyKey *uuid.UUID) (*BookResult, error)
	SetStatus(ctx context.Context, actor shared.Actor, appointmentID int64, target string) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	uow          shared.UnitOfWork
	appointments queries.AppointmentQueries
	clock        clock.Clock
	booking      config.BookingConfig
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	appointments queries.AppointmentQueries,
	clk clock.Clock,
	booking config.BookingConfig,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:          uow,
		appointments: appointments,
		clock:        clk,
		booking:      booking,
	}
}

func (uc *appointmentCommandsImpl) Book(ctx context.Context, req BookRequest, idempotencyKey *uuid.UUID) (*BookResult, error) {
	s, err := uc.validateBooking(ctx, req)
	if err != nil {
		if !errs.Is(err, errs.ErrDatabaseOperationFailed) {
			metrics.RecordBooking(metrics.BookingRejected)
		}
		return nil, err
	}

	replayedID, appointmentID, err := uc.executeBooking(ctx, s, req, idempotencyKey)
	if err != nil {
		switch {
		case errs.Is(err, appointment.ErrNoAvailableSlots):
			metrics.RecordBooking(metrics.BookingNoCapacity)
		case errs.IsAny(err, errs.ErrIdempotencyConflict, errs.ErrIdempotencyInProgress):
			metrics.RecordBooking(metrics.BookingRejected)
		default:
			metrics.RecordBooking(metrics.BookingError)
		}
		return nil, err
	}

	if replayedID != nil {
		view, err := uc.appointments.GetByIDSystem(ctx, *replayedID)
		if err != nil {
			return nil, err
		}
		return &BookResult{Appointment: view, IsReplayed: true}, nil
	}

	metrics.RecordBooking(metrics.BookingBooked)

	// Read-after-write: the view carries the salon and customer names
	view, err := uc.appointments.GetByIDSystem(ctx, appointmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &BookResult{Appointment: view}, nil
}

func (uc *appointmentCommandsImpl) validateBooking(ctx context.Context, req BookRequest) (*salon.Salon, error) {
	date, err := appointment.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if req.Date < clock.Today(uc.clock, uc.booking.Location()) {
		return nil, errs.Mark(appointment.ErrDateInPast, errs.ErrDomainValidation)
	}

	reads := uc.uow.CommandReads()

	current, err := reads.Settings(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if current.MaintenanceMode {
		return nil, errs.ErrMaintenanceMode
	}

	s, err := reads.SalonByID(ctx, req.SalonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !s.IsWorkingDay(date) {
		return nil, errs.Mark(appointment.ErrSalonClosed, errs.ErrDomainValidation)
	}
	if !s.HasSlot(date, req.Time) {
		return nil, errs.Mark(appointment.ErrInvalidTime, errs.ErrDomainValidation)
	}
	return s, nil
}

// executeBooking returns the original appointment id when the idempotency key replays a
// completed request, otherwise the id of the new appointment.
func (uc *appointmentCommandsImpl) executeBooking(
	ctx context.Context,
	s *salon.Salon,
	req BookRequest,
	idempotencyKey *uuid.UUID,
) (*int64, int64, error) {
	var (
		replayedID    *int64
		appointmentID int64
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayedID, appointmentID = nil, 0

		if idempotencyKey != nil {
			id, err := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, req)
			if err != nil {
				return err
			}
			if id != nil {
				replayedID = id
				return nil
			}
		}

		if err := tx.Salons().LockForBooking(ctx, tx.DB(), s.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSalonNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Appointments().LockSlot(ctx, tx.DB(), s.ID(), req.Date, req.Time); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		count, err := tx.Reads().CountSlotBookings(ctx, s.ID(), req.Date, req.Time, uc.booking.ReleaseCanceledSlots)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if _, err := appointment.CheckAvailability(s.Capacity(), count); err != nil {
			return err
		}

		a, err := appointment.NewAppointment(req.CustomerID, s.ID(), s.OwnerID(), req.Date, req.Time)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		id, err := tx.Appointments().Create(ctx, tx.DB(), a)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSalonNotFound
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrUserNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		notice := shared.AppointmentNotice{
			AppointmentID: id,
			CustomerID:    req.CustomerID,
			SalonID:       s.ID(),
			SalonName:     s.Profile().Name,
			Date:          req.Date,
			Time:          req.Time,
			Status:        appointment.StatusBooked.String(),
		}
		if err := uc.enqueueNotifications(ctx, tx, shared.TopicAppointmentBooked, notice); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, req.CustomerID, bookEndpoint, id); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		appointmentID = id
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return replayedID, appointmentID, nil
}

// claimIdempotencyKey records the key as processing. A completed key with the same request
// hash yields the stored appointment id for replay.
func (uc *appointmentCommandsImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key uuid.UUID, req BookRequest) (*int64, error) {
	requestHash := calculateRequestHash(req)
	now := uc.clock.Now()
	expiresAt := now.Add(idempotencyLifetime)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, req.CustomerID, bookEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, req.CustomerID, bookEndpoint)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if !existing.ExpiresAt.After(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, req.CustomerID, bookEndpoint, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultAppointmentID == nil {
			return nil, errs.Mark(errs.New("completed request missing result appointment id"), errs.ErrIdempotencyCheckFailed)
		}
		return existing.ResultAppointmentID, nil
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), errs.ErrIdempotencyCheckFailed)
	}
}

func (uc *appointmentCommandsImpl) SetStatus(ctx context.Context, actor shared.Actor, appointmentID int64, target string) (*queries.AppointmentView, error) {
	to, err := appointment.NewStatus(target)
	if err != nil {
		metrics.RecordTransition(target, false)
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	today := clock.Today(uc.clock, uc.booking.Location())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Reads().AppointmentByID(ctx, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !a.IsBookedBy(actor.ID) && !(actor.IsAdmin() && a.IsOwnedBy(actor.ID)) {
			return ErrAppointmentForbidden
		}

		from := a.Status()
		if err := a.TransitionTo(to, today); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), a.ID(), from, a.Status()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrAppointmentStatusConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		notice := shared.AppointmentNotice{
			AppointmentID: a.ID(),
			CustomerID:    a.CustomerID(),
			SalonID:       a.SalonID(),
			Date:          a.Date(),
			Time:          a.Time(),
			Status:        a.Status().String(),
		}
		if err := uc.enqueueNotifications(ctx, tx, shared.TopicAppointmentStatusChanged, notice); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	metrics.RecordTransition(to.String(), err == nil)
	if err != nil {
		return nil, err
	}

	return uc.appointments.GetByIDSystem(ctx, appointmentID)
}

// enqueueNotifications writes one outbox job per channel; the dispatcher decides later
// whether a channel is enabled.
func (uc *appointmentCommandsImpl) enqueueNotifications(ctx context.Context, tx shared.Tx, topic string, notice shared.AppointmentNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	runAt := uc.clock.Now()
	for _, kind := range []string{shared.NotificationEmail, shared.NotificationSMS} {
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, runAt); err != nil {
			return err
		}
	}
	slog.DebugContext(ctx, "notification jobs enqueued", "topic", topic, "appointment_id", notice.AppointmentID)
	return nil
}

func calculateRequestHash(req BookRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
