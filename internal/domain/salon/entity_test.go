//go:build unit

package salon_test

import (
	"testing"

	"salon-booking/internal/domain/salon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchedule() salon.Schedule {
	days, _ := salon.NewWorkingDays([]string{"monday", "tuesday"})
	return salon.Schedule{
		WorkingDays:        days,
		Start:              salon.MustClockTime("09:00"),
		End:                salon.MustClockTime("18:00"),
		SlotDuration:       30,
		MaxBookingsPerSlot: 1,
	}
}

func clockPtr(s string) *salon.ClockTime {
	c := salon.MustClockTime(s)
	return &c
}

func TestNewSalon(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*salon.Profile, *salon.Schedule, *salon.OfferStatus)
		errIs  error
	}{
		{
			name:   "基本成功ケース",
			mutate: func(*salon.Profile, *salon.Schedule, *salon.OfferStatus) {},
		},
		{
			name: "休憩時間ありOK",
			mutate: func(_ *salon.Profile, s *salon.Schedule, _ *salon.OfferStatus) {
				s.BreakStart, s.BreakEnd = clockPtr("12:00"), clockPtr("13:00")
			},
		},
		{
			name:   "名前なしNG",
			mutate: func(p *salon.Profile, _ *salon.Schedule, _ *salon.OfferStatus) { p.Name = "" },
			errIs:  salon.ErrInvalidName,
		},
		{
			name: "開始が終了より後NG",
			mutate: func(_ *salon.Profile, s *salon.Schedule, _ *salon.OfferStatus) {
				s.Start, s.End = salon.MustClockTime("18:00"), salon.MustClockTime("09:00")
			},
			errIs: salon.ErrInvalidHours,
		},
		{
			name: "休憩が営業時間外NG",
			mutate: func(_ *salon.Profile, s *salon.Schedule, _ *salon.OfferStatus) {
				s.BreakStart, s.BreakEnd = clockPtr("17:30"), clockPtr("19:00")
			},
			errIs: salon.ErrInvalidBreak,
		},
		{
			name: "休憩の片側のみNG",
			mutate: func(_ *salon.Profile, s *salon.Schedule, _ *salon.OfferStatus) {
				s.BreakStart = clockPtr("12:00")
			},
			errIs: salon.ErrInvalidBreak,
		},
		{
			name:   "枠長ゼロNG",
			mutate: func(_ *salon.Profile, s *salon.Schedule, _ *salon.OfferStatus) { s.SlotDuration = 0 },
			errIs:  salon.ErrInvalidSlotDuration,
		},
		{
			name:   "定員ゼロNG",
			mutate: func(_ *salon.Profile, s *salon.Schedule, _ *salon.OfferStatus) { s.MaxBookingsPerSlot = 0 },
			errIs:  salon.ErrInvalidCapacity,
		},
		{
			name:   "不正な提供状態NG",
			mutate: func(_ *salon.Profile, _ *salon.Schedule, o *salon.OfferStatus) { *o = "paused" },
			errIs:  salon.ErrInvalidOfferStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := salon.Profile{Name: "Lotus Spa", City: "Shanghai"}
			schedule := validSchedule()
			status := salon.OfferActive
			tt.mutate(&profile, &schedule, &status)

			s, err := salon.New(7, profile, schedule, salon.PriceRange{}, status)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), s.OwnerID())
			assert.True(t, s.IsOwnedBy(7))
			assert.False(t, s.IsOwnedBy(8))
			assert.Equal(t, 1, s.Capacity())
		})
	}
}

func TestValueObjects(t *testing.T) {
	t.Run("時刻", func(t *testing.T) {
		c, err := salon.ParseClockTime("9:05")
		require.NoError(t, err)
		assert.Equal(t, "09:05", c.String())

		_, err = salon.ParseClockTime("25:00")
		assert.ErrorIs(t, err, salon.ErrInvalidClockTime)
	})

	t.Run("営業日", func(t *testing.T) {
		_, err := salon.NewWorkingDays([]string{"funday"})
		assert.ErrorIs(t, err, salon.ErrInvalidWorkingDay)
	})

	t.Run("価格帯", func(t *testing.T) {
		p, err := salon.NewPriceRange(80, 300)
		require.NoError(t, err)
		assert.Equal(t, 80.0, p.Min())

		_, err = salon.NewPriceRange(300, 80)
		assert.ErrorIs(t, err, salon.ErrInvalidPriceRange)
		_, err = salon.NewPriceRange(-1, 80)
		assert.ErrorIs(t, err, salon.ErrInvalidPriceRange)
	})

	t.Run("提供ステータスの既定値はactive", func(t *testing.T) {
		s, err := salon.NewOfferStatus("")
		require.NoError(t, err)
		assert.Equal(t, salon.OfferActive, s)
	})
}

func TestSalonUpdateKeepsStateOnError(t *testing.T) {
	s, err := salon.New(1, salon.Profile{Name: "Lotus Spa"}, validSchedule(), salon.PriceRange{}, salon.OfferActive)
	require.NoError(t, err)

	bad := validSchedule()
	bad.MaxBookingsPerSlot = 0
	err = s.Update(salon.Profile{Name: "Renamed"}, bad, salon.PriceRange{}, salon.OfferInactive)

	require.ErrorIs(t, err, salon.ErrInvalidCapacity)
	assert.Equal(t, "Lotus Spa", s.Profile().Name)
	assert.Equal(t, salon.OfferActive, s.OfferStatus())
}
