//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/settings"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	*txMocks
	views *queriesmock.MockAppointmentQueries
	clock *clock.MockClock
	uc    commands.AppointmentCommands
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.txMocks = newTxMocks(s.ctrl)
	s.views = queriesmock.NewMockAppointmentQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))

	s.uc = commands.NewAppointmentCommands(s.uow, s.views, s.clock, config.BookingConfig{TimeZone: "UTC"})
}

func (s *AppointmentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func bookRequest() commands.BookRequest {
	return commands.BookRequest{CustomerID: 2, SalonID: 10, Date: "2030-01-07", Time: "10:00 AM"}
}

func requestHash(req commands.BookRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (s *AppointmentCommandsTestSuite) expectBookable() {
	s.reads.EXPECT().Settings(gomock.Any()).Return(settings.Defaults(), nil)
	s.reads.EXPECT().SalonByID(gomock.Any(), int64(10)).Return(builder.NewSalonBuilder().BuildPersisted(), nil)
}

// ================================================================================
// Book
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestBook() {
	ctx := context.Background()
	req := bookRequest()
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("success: inserts under the slot lock and enqueues notifications", func() {
		s.expectBookable()
		gomock.InOrder(
			s.salons.EXPECT().LockForBooking(ctx, nil, int64(10)).Return(nil),
			s.appointments.EXPECT().LockSlot(ctx, nil, int64(10), "2030-01-07", "10:00 AM").Return(nil),
			s.reads.EXPECT().CountSlotBookings(ctx, int64(10), "2030-01-07", "10:00 AM", false).Return(1, nil),
			s.appointments.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, a *appointment.Appointment) (int64, error) {
					s.Equal(int64(1), a.OwnerID())
					s.Equal(appointment.StatusBooked, a.Status())
					return view.ID, nil
				}),
		)
		s.notifications.EXPECT().
			CreateJob(ctx, nil, gomock.Any(), shared.TopicAppointmentBooked, gomock.Any(), s.clock.Now()).
			Return(nil).Times(2)
		s.views.EXPECT().GetByIDSystem(ctx, view.ID).Return(view, nil)

		result, err := s.uc.Book(ctx, req, nil)
		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.Equal(view, result.Appointment)
	})

	s.Run("capacity reached returns No available slots without inserting", func() {
		s.expectBookable()
		s.salons.EXPECT().LockForBooking(ctx, nil, int64(10)).Return(nil)
		s.appointments.EXPECT().LockSlot(ctx, nil, int64(10), req.Date, req.Time).Return(nil)
		s.reads.EXPECT().CountSlotBookings(ctx, int64(10), req.Date, req.Time, false).Return(2, nil)

		result, err := s.uc.Book(ctx, req, nil)
		s.Nil(result)
		s.Require().ErrorIs(err, appointment.ErrNoAvailableSlots)
		s.Equal("No available slots", err.Error())
	})

	s.Run("rejects a date before today", func() {
		past := req
		past.Date = "2029-12-31"

		_, err := s.uc.Book(ctx, past, nil)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.True(errs.Is(err, appointment.ErrDateInPast))
	})

	s.Run("malformed date is a validation error", func() {
		bad := req
		bad.Date = "2030-1-7"

		_, err := s.uc.Book(ctx, bad, nil)
		s.True(errs.Is(err, appointment.ErrInvalidDate))
	})

	s.Run("maintenance mode blocks booking", func() {
		current := settings.Defaults()
		current.MaintenanceMode = true
		s.reads.EXPECT().Settings(gomock.Any()).Return(current, nil)

		_, err := s.uc.Book(ctx, req, nil)
		s.ErrorIs(err, errs.ErrMaintenanceMode)
	})

	s.Run("unknown salon", func() {
		s.reads.EXPECT().Settings(gomock.Any()).Return(settings.Defaults(), nil)
		s.reads.EXPECT().SalonByID(gomock.Any(), int64(10)).
			Return(nil, infra.WrapRepoErr("salon not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.uc.Book(ctx, req, nil)
		s.ErrorIs(err, commands.ErrSalonNotFound)
	})

	s.Run("salon deleted before the booking transaction locks it", func() {
		s.expectBookable()
		s.salons.EXPECT().LockForBooking(ctx, nil, int64(10)).
			Return(infra.WrapRepoErr("salon not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.uc.Book(ctx, req, nil)
		s.ErrorIs(err, commands.ErrSalonNotFound)
	})

	s.Run("insert rejected by the salon foreign key", func() {
		s.expectBookable()
		s.salons.EXPECT().LockForBooking(ctx, nil, int64(10)).Return(nil)
		s.appointments.EXPECT().LockSlot(ctx, nil, int64(10), req.Date, req.Time).Return(nil)
		s.reads.EXPECT().CountSlotBookings(ctx, int64(10), req.Date, req.Time, false).Return(0, nil)
		s.appointments.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("salon not found", &pgconn.PgError{Code: "23503", ConstraintName: "appointments_salon_id_fkey"}, infra.KindNotFound))

		_, err := s.uc.Book(ctx, req, nil)
		s.ErrorIs(err, commands.ErrSalonNotFound)
	})

	s.Run("insert rejected by the customer foreign key", func() {
		s.expectBookable()
		s.salons.EXPECT().LockForBooking(ctx, nil, int64(10)).Return(nil)
		s.appointments.EXPECT().LockSlot(ctx, nil, int64(10), req.Date, req.Time).Return(nil)
		s.reads.EXPECT().CountSlotBookings(ctx, int64(10), req.Date, req.Time, false).Return(0, nil)
		s.appointments.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create appointment", &pgconn.PgError{Code: "23503", ConstraintName: "appointments_user_id_fkey"}))

		_, err := s.uc.Book(ctx, req, nil)
		s.ErrorIs(err, commands.ErrUserNotFound)
	})

	s.Run("time that is not an offered slot", func() {
		s.expectBookable()
		odd := req
		odd.Time = "10:30 AM"

		_, err := s.uc.Book(ctx, odd, nil)
		s.True(errs.Is(err, appointment.ErrInvalidTime))
	})

	s.Run("closed day", func() {
		s.reads.EXPECT().Settings(gomock.Any()).Return(settings.Defaults(), nil)
		s.reads.EXPECT().SalonByID(gomock.Any(), int64(10)).
			Return(builder.NewSalonBuilder().WithWorkingDays("saturday", "sunday").BuildPersisted(), nil)

		_, err := s.uc.Book(ctx, req, nil)
		s.True(errs.Is(err, appointment.ErrSalonClosed))
	})
}

func (s *AppointmentCommandsTestSuite) TestBookIdempotency() {
	ctx := context.Background()
	req := bookRequest()
	key := uuid.New()
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("completed key with the same body replays the original appointment", func() {
		s.expectBookable()
		s.idempotency.EXPECT().TryInsert(ctx, nil, key, req.CustomerID, gomock.Any(), requestHash(req), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(ctx, key, req.CustomerID, gomock.Any()).Return(&shared.IdempotencyRecord{
			Key:                 key,
			Status:              shared.IdempotencyCompleted,
			RequestHash:         requestHash(req),
			ResultAppointmentID: &view.ID,
			ExpiresAt:           s.clock.Now().Add(time.Hour),
		}, nil)
		s.views.EXPECT().GetByIDSystem(ctx, view.ID).Return(view, nil)

		result, err := s.uc.Book(ctx, req, &key)
		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(view.ID, result.Appointment.ID)
	})

	s.Run("same key with a different body conflicts", func() {
		s.expectBookable()
		s.idempotency.EXPECT().TryInsert(ctx, nil, key, req.CustomerID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(ctx, key, req.CustomerID, gomock.Any()).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyCompleted,
			RequestHash: "other",
			ExpiresAt:   s.clock.Now().Add(time.Hour),
		}, nil)

		_, err := s.uc.Book(ctx, req, &key)
		s.ErrorIs(err, errs.ErrIdempotencyConflict)
	})

	s.Run("key still processing", func() {
		s.expectBookable()
		s.idempotency.EXPECT().TryInsert(ctx, nil, key, req.CustomerID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.reads.EXPECT().IdempotencyByKey(ctx, key, req.CustomerID, gomock.Any()).Return(&shared.IdempotencyRecord{
			Status:      shared.IdempotencyProcessing,
			RequestHash: requestHash(req),
			ExpiresAt:   s.clock.Now().Add(time.Hour),
		}, nil)

		_, err := s.uc.Book(ctx, req, &key)
		s.ErrorIs(err, errs.ErrIdempotencyInProgress)
	})

	s.Run("new key is completed with the appointment id", func() {
		s.expectBookable()
		s.idempotency.EXPECT().TryInsert(ctx, nil, key, req.CustomerID, gomock.Any(), requestHash(req), s.clock.Now().Add(24*time.Hour)).Return(true, nil)
		s.salons.EXPECT().LockForBooking(ctx, nil, int64(10)).Return(nil)
		s.appointments.EXPECT().LockSlot(ctx, nil, int64(10), req.Date, req.Time).Return(nil)
		s.reads.EXPECT().CountSlotBookings(ctx, int64(10), req.Date, req.Time, false).Return(0, nil)
		s.appointments.EXPECT().Create(ctx, nil, gomock.Any()).Return(view.ID, nil)
		s.notifications.EXPECT().CreateJob(ctx, nil, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.idempotency.EXPECT().UpdateStatusCompleted(ctx, nil, key, req.CustomerID, gomock.Any(), view.ID).Return(nil)
		s.views.EXPECT().GetByIDSystem(ctx, view.ID).Return(view, nil)

		result, err := s.uc.Book(ctx, req, &key)
		s.Require().NoError(err)
		s.False(result.IsReplayed)
	})
}

// ================================================================================
// SetStatus
// ================================================================================

func (s *AppointmentCommandsTestSuite) TestSetStatus() {
	ctx := context.Background()
	customer := shared.Actor{ID: 2, Role: user.RoleCustomer}
	owner := shared.Actor{ID: 1, Role: user.RoleAdmin}
	stranger := shared.Actor{ID: 99, Role: user.RoleCustomer}
	otherAdmin := shared.Actor{ID: 98, Role: user.RoleAdmin}

	s.Run("customer cancels own booking", func() {
		a := builder.NewAppointmentBuilder().BuildPersisted()
		view := builder.NewAppointmentBuilder().WithStatus("canceled").BuildView()

		s.reads.EXPECT().AppointmentByID(ctx, a.ID()).Return(a, nil)
		s.appointments.EXPECT().UpdateStatus(ctx, nil, a.ID(), appointment.StatusBooked, appointment.StatusCanceled).Return(nil)
		s.notifications.EXPECT().
			CreateJob(ctx, nil, gomock.Any(), shared.TopicAppointmentStatusChanged, gomock.Any(), gomock.Any()).
			Return(nil).Times(2)
		s.views.EXPECT().GetByIDSystem(ctx, a.ID()).Return(view, nil)

		got, err := s.uc.SetStatus(ctx, customer, a.ID(), "canceled")
		s.Require().NoError(err)
		s.Equal("canceled", got.Status)
	})

	s.Run("salon owner completes a booking", func() {
		a := builder.NewAppointmentBuilder().BuildPersisted()
		s.reads.EXPECT().AppointmentByID(ctx, a.ID()).Return(a, nil)
		s.appointments.EXPECT().UpdateStatus(ctx, nil, a.ID(), appointment.StatusBooked, appointment.StatusCompleted).Return(nil)
		s.notifications.EXPECT().CreateJob(ctx, nil, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		s.views.EXPECT().GetByIDSystem(ctx, a.ID()).Return(builder.NewAppointmentBuilder().WithStatus("completed").BuildView(), nil)

		_, err := s.uc.SetStatus(ctx, owner, a.ID(), "completed")
		s.Require().NoError(err)
	})

	s.Run("other users cannot change the booking", func() {
		for _, actor := range []shared.Actor{stranger, otherAdmin} {
			a := builder.NewAppointmentBuilder().BuildPersisted()
			s.reads.EXPECT().AppointmentByID(ctx, a.ID()).Return(a, nil)

			_, err := s.uc.SetStatus(ctx, actor, a.ID(), "canceled")
			s.ErrorIs(err, commands.ErrAppointmentForbidden)
		}
	})

	s.Run("terminal status cannot change", func() {
		a := builder.NewAppointmentBuilder().WithStatus("completed").BuildPersisted()
		s.reads.EXPECT().AppointmentByID(ctx, a.ID()).Return(a, nil)

		_, err := s.uc.SetStatus(ctx, customer, a.ID(), "canceled")
		s.True(errs.Is(err, appointment.ErrTerminalStatus))
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("past appointment is frozen", func() {
		a := builder.NewAppointmentBuilder().WithDate("2029-12-01").BuildPersisted()
		s.reads.EXPECT().AppointmentByID(ctx, a.ID()).Return(a, nil)

		_, err := s.uc.SetStatus(ctx, customer, a.ID(), "canceled")
		s.True(errs.Is(err, appointment.ErrAppointmentInPast))
	})

	s.Run("unknown target status", func() {
		_, err := s.uc.SetStatus(ctx, customer, 100, "archived")
		s.True(errs.Is(err, appointment.ErrInvalidStatus))
	})

	s.Run("concurrent transition loses the conditional update", func() {
		a := builder.NewAppointmentBuilder().BuildPersisted()
		s.reads.EXPECT().AppointmentByID(ctx, a.ID()).Return(a, nil)
		s.appointments.EXPECT().UpdateStatus(ctx, nil, a.ID(), appointment.StatusBooked, appointment.StatusCanceled).
			Return(infra.WrapRepoErr("appointment status changed concurrently", pgx.ErrNoRows, infra.KindConflict))

		_, err := s.uc.SetStatus(ctx, customer, a.ID(), "canceled")
		s.ErrorIs(err, commands.ErrAppointmentStatusConflict)
	})

	s.Run("appointment not found", func() {
		s.reads.EXPECT().AppointmentByID(ctx, int64(404)).
			Return(nil, infra.WrapRepoErr("appointment not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.uc.SetStatus(ctx, customer, 404, "canceled")
		s.ErrorIs(err, commands.ErrAppointmentNotFound)
	})
}
