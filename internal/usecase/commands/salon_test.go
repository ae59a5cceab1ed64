//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/salon"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	salonOwner = shared.Actor{ID: 1, Role: user.RoleAdmin}
	otherOwner = shared.Actor{ID: 5, Role: user.RoleAdmin}
	customer   = shared.Actor{ID: 2, Role: user.RoleCustomer}
)

func newSalonCommands(t *testing.T) (*txMocks, commands.SalonCommands) {
	m := newTxMocks(gomock.NewController(t))
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	return m, commands.NewSalonCommands(m.uow, clk, config.BookingConfig{TimeZone: "UTC"})
}

func salonInput() commands.SalonInput {
	return commands.SalonInput{
		Name:               "Blue Lotus Spa",
		Address:            "1 Lake Road",
		City:               "Hangzhou",
		WorkingDays:        []string{"monday", "tuesday"},
		StartTime:          "09:00",
		EndTime:            "17:00",
		SlotDuration:       60,
		MaxBookingsPerSlot: 2,
		MinServicePrice:    20,
		MaxServicePrice:    120,
		OfferStatus:        "active",
	}
}

func TestSalonCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admin becomes the owner", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		m.salons.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, s *salon.Salon) (int64, error) {
				assert.Equal(t, salonOwner.ID, s.OwnerID())
				assert.Equal(t, 2, s.Capacity())
				return 10, nil
			})

		id, err := uc.Create(ctx, salonOwner, salonInput())
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
	})

	t.Run("customers cannot create salons", func(t *testing.T) {
		_, uc := newSalonCommands(t)

		_, err := uc.Create(ctx, customer, salonInput())
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, uc := newSalonCommands(t)
		cases := map[string]func(*commands.SalonInput){
			"end before start":  func(in *commands.SalonInput) { in.EndTime = "08:00" },
			"zero capacity":     func(in *commands.SalonInput) { in.MaxBookingsPerSlot = 0 },
			"zero slot":         func(in *commands.SalonInput) { in.SlotDuration = 0 },
			"unknown weekday":   func(in *commands.SalonInput) { in.WorkingDays = []string{"funday"} },
			"bad time format":   func(in *commands.SalonInput) { in.StartTime = "9am" },
			"half a break":      func(in *commands.SalonInput) { bs := "12:00"; in.BreakStartTime = &bs },
			"empty salon name":  func(in *commands.SalonInput) { in.Name = "" },
			"unknown offer tag": func(in *commands.SalonInput) { in.OfferStatus = "paused" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				in := salonInput()
				mutate(&in)

				_, err := uc.Create(ctx, salonOwner, in)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got %v", err)
			})
		}
	})
}

func TestSalonUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("patch keeps unspecified fields", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		m.reads.EXPECT().SalonByID(ctx, int64(10)).Return(builder.NewSalonBuilder().BuildPersisted(), nil)
		m.salons.EXPECT().Update(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, s *salon.Salon) error {
				assert.Equal(t, 4, s.Capacity())
				assert.Equal(t, "Blue Lotus Spa", s.Profile().Name)
				assert.Equal(t, 60, s.Schedule().SlotDuration)
				return nil
			})

		capacity := 4
		err := uc.Update(ctx, salonOwner, 10, commands.SalonPatch{MaxBookingsPerSlot: &capacity})
		require.NoError(t, err)
	})

	t.Run("only the owner may update", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		m.reads.EXPECT().SalonByID(ctx, int64(10)).Return(builder.NewSalonBuilder().BuildPersisted(), nil)

		err := uc.Update(ctx, otherOwner, 10, commands.SalonPatch{})
		assert.ErrorIs(t, err, commands.ErrSalonForbidden)
	})

	t.Run("missing salon", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		m.reads.EXPECT().SalonByID(ctx, int64(10)).
			Return(nil, infra.WrapRepoErr("salon not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.Update(ctx, salonOwner, 10, commands.SalonPatch{})
		assert.ErrorIs(t, err, commands.ErrSalonNotFound)
	})
}

func TestSalonDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while booked appointments remain", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		m.salons.EXPECT().LockForDelete(ctx, nil, int64(10)).Return(nil)
		m.reads.EXPECT().SalonByID(ctx, int64(10)).Return(builder.NewSalonBuilder().BuildPersisted(), nil)
		m.reads.EXPECT().CountUpcomingBookings(ctx, int64(10), "2030-01-01").Return(3, nil)

		err := uc.Delete(ctx, salonOwner, 10)
		assert.ErrorIs(t, err, commands.ErrSalonHasUpcomingAppointments)
	})

	t.Run("deletes when only past appointments exist", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		gomock.InOrder(
			m.salons.EXPECT().LockForDelete(ctx, nil, int64(10)).Return(nil),
			m.reads.EXPECT().SalonByID(ctx, int64(10)).Return(builder.NewSalonBuilder().BuildPersisted(), nil),
			m.reads.EXPECT().CountUpcomingBookings(ctx, int64(10), "2030-01-01").Return(0, nil),
			m.salons.EXPECT().Delete(ctx, nil, int64(10)).Return(nil),
		)

		require.NoError(t, uc.Delete(ctx, salonOwner, 10))
	})

	t.Run("missing salon is reported before counting bookings", func(t *testing.T) {
		m, uc := newSalonCommands(t)
		m.salons.EXPECT().LockForDelete(ctx, nil, int64(10)).
			Return(infra.WrapRepoErr("salon not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.Delete(ctx, salonOwner, 10)
		assert.ErrorIs(t, err, commands.ErrSalonNotFound)
	})
}
