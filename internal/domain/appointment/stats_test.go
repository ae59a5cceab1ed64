//go:build unit

package appointment_test

import (
	"testing"

	"salon-booking/internal/domain/appointment"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	const today = "2025-06-15"

	tests := []struct {
		name  string
		items []appointment.Snapshot
		want  appointment.Stats
	}{
		{
			name: "予約なし",
			want: appointment.Stats{},
		},
		{
			name: "状態ごとに集計",
			items: []appointment.Snapshot{
				{Status: appointment.StatusBooked, Date: "2025-06-20"},
				{Status: appointment.StatusBooked, Date: today},
				{Status: appointment.StatusCanceled, Date: "2025-06-20"},
				{Status: appointment.StatusCompleted, Date: "2025-06-01"},
			},
			want: appointment.Stats{Total: 4, Canceled: 1, Completed: 1, Upcoming: 2},
		},
		{
			name: "過去の予約済みと終了済みが混在",
			items: []appointment.Snapshot{
				{Status: appointment.StatusBooked, Date: "2025-07-01"},
				{Status: appointment.StatusBooked, Date: "2025-05-20"},
				{Status: appointment.StatusCompleted, Date: "2025-05-21"},
				{Status: appointment.StatusCanceled, Date: "2025-07-03"},
			},
			want: appointment.Stats{Total: 4, Canceled: 1, Completed: 1, Upcoming: 1},
		},
		{
			name: "過去の予約済みは upcoming に含めない",
			items: []appointment.Snapshot{
				{Status: appointment.StatusBooked, Date: "2025-06-14"},
			},
			want: appointment.Stats{Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appointment.Summarize(tt.items, today)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
