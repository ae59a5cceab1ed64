//go:build unit

package salon_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/salon"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestEnumerateSlots(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		want     []string
	}{
		{
			name:     "30分刻み",
			start:    "09:00",
			end:      "11:00",
			duration: 30,
			want:     []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM"},
		},
		{
			name:     "最後の枠は終了時刻を超えてもよい",
			start:    "09:00",
			end:      "10:00",
			duration: 45,
			want:     []string{"9:00 AM", "9:45 AM"},
		},
		{
			name:     "正午をまたぐ",
			start:    "11:30",
			end:      "13:00",
			duration: 30,
			want:     []string{"11:30 AM", "12:00 PM", "12:30 PM"},
		},
		{
			name:     "開始と終了が同じなら空",
			start:    "09:00",
			end:      "09:00",
			duration: 30,
			want:     []string{},
		},
		{
			name:     "枠長ゼロは空",
			start:    "09:00",
			end:      "17:00",
			duration: 0,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := salon.EnumerateSlots(day, salon.MustClockTime(tt.start), salon.MustClockTime(tt.end), tt.duration)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("slots mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("決定的で件数は切り上げ", func(t *testing.T) {
		start, end := salon.MustClockTime("08:00"), salon.MustClockTime("18:10")
		first := salon.EnumerateSlots(day, start, end, 25)
		second := salon.EnumerateSlots(day.AddDate(0, 0, 1), start, end, 25)

		assert.Equal(t, first, second)
		assert.Len(t, first, (610+24)/25)
	})
}

func TestSalonSlots(t *testing.T) {
	days, err := salon.NewWorkingDays([]string{"Monday", "friday", "monday"})
	require.NoError(t, err)
	assert.Equal(t, []string{"monday", "friday"}, days.Values())

	s, err := salon.New(1, salon.Profile{Name: "Lotus Spa"}, salon.Schedule{
		WorkingDays:        days,
		Start:              salon.MustClockTime("09:00"),
		End:                salon.MustClockTime("11:00"),
		SlotDuration:       30,
		MaxBookingsPerSlot: 2,
	}, salon.PriceRange{}, salon.OfferActive)
	require.NoError(t, err)

	friday := date(t, "2025-03-14")
	saturday := date(t, "2025-03-15")

	assert.True(t, s.IsWorkingDay(friday))
	assert.False(t, s.IsWorkingDay(saturday))
	assert.Equal(t, []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM"}, s.Slots(friday))
	assert.Empty(t, s.Slots(saturday))
	assert.True(t, s.HasSlot(friday, "10:30 AM"))
	assert.False(t, s.HasSlot(friday, "11:00 AM"))
	assert.False(t, s.HasSlot(saturday, "9:00 AM"))
}
