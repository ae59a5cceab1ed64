//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/pkg/ptr"
	"salon-booking/internal/usecase/queries"
	readstoremock "salon-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func appointmentRow(id int64, status string) query.AppointmentListRow {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return query.AppointmentListRow{
		ID:           id,
		UserID:       7,
		SalonID:      3,
		OwnerID:      1,
		Date:         "2025-03-10",
		Time:         "10:00 AM",
		Status:       status,
		SalonName:    "Blue Lotus Spa",
		CustomerName: "Alice",
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestAppointmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockAppointmentReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment found",
			setupMock: func(mock *readstoremock.MockAppointmentReadQueries) {
				mock.EXPECT().GetAppointmentViewByID(ctx, gomock.Any(), int64(42)).Return(appointmentRow(42, "booked"), nil)
			},
		},
		{
			name: "error: appointment not found",
			setupMock: func(mock *readstoremock.MockAppointmentReadQueries) {
				mock.EXPECT().GetAppointmentViewByID(ctx, gomock.Any(), int64(42)).Return(query.AppointmentListRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockAppointmentReadQueries) {
				mock.EXPECT().GetAppointmentViewByID(ctx, gomock.Any(), int64(42)).Return(query.AppointmentListRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAppointmentReadQueries(ctrl)
			store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, 42)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			want := &queries.AppointmentView{
				ID:         42,
				CustomerID: 7,
				SalonID:    3,
				OwnerID:    1,
				Date:       "2025-03-10",
				Time:       "10:00 AM",
				Status:     "booked",
				Salon:      queries.Ref{ID: 3, Name: "Blue Lotus Spa"},
				Customer:   queries.Ref{ID: 7, Name: "Alice"},
				CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
				UpdatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			}
			if diff := cmp.Diff(want, result); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// ListByOwner Tests
// =============================================================================

func TestAppointmentReadStore_ListByOwner(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		filter       queries.AppointmentFilter
		expectParams query.ListAppointmentsByOwnerParams
	}{
		{
			name:   "no filters",
			filter: queries.AppointmentFilter{},
			expectParams: query.ListAppointmentsByOwnerParams{
				OwnerID: 1,
			},
		},
		{
			name: "all filters",
			filter: queries.AppointmentFilter{
				Status:  ptr.Of("booked"),
				Date:    ptr.Of("2025-03-10"),
				SalonID: ptr.Of(int64(3)),
			},
			expectParams: query.ListAppointmentsByOwnerParams{
				OwnerID: 1,
				Status:  pgtype.Text{String: "booked", Valid: true},
				Date:    pgtype.Text{String: "2025-03-10", Valid: true},
				SalonID: pgtype.Int8{Int64: 3, Valid: true},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockAppointmentReadQueries(ctrl)
			store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().ListAppointmentsByOwner(ctx, gomock.Any(), tc.expectParams).
				Return([]query.AppointmentListRow{appointmentRow(2, "booked"), appointmentRow(1, "canceled")}, nil)

			result, err := store.ListByOwner(ctx, 1, tc.filter)

			require.NoError(t, err)
			require.Len(t, result, 2)
			assert.Equal(t, int64(2), result[0].ID)
			assert.Equal(t, "Alice", result[1].Customer.Name)
		})
	}

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockAppointmentReadQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListAppointmentsByOwner(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		result, err := store.ListByOwner(ctx, 1, queries.AppointmentFilter{})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, result)
	})
}

// =============================================================================
// CountForSlot / Snapshots Tests
// =============================================================================

func TestAppointmentReadStore_CountForSlot(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockAppointmentReadQueries(ctrl)
	store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().CountAppointmentsForSlot(ctx, gomock.Any(), query.CountAppointmentsForSlotParams{
		SalonID:         3,
		Date:            "2025-03-10",
		Time:            "10:00 AM",
		ExcludeCanceled: true,
	}).Return(int64(2), nil)

	count, err := store.CountForSlot(ctx, 3, "2025-03-10", "10:00 AM", true)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAppointmentReadStore_Snapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("counts all appointments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockAppointmentReadQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListAppointmentStatusDates(ctx, gomock.Any(), pgtype.Int8{}).Return([]query.AppointmentStatusDateRow{
			{Status: "booked", Date: "2025-03-10"},
			{Status: "canceled", Date: "2025-03-01"},
		}, nil)

		got, err := store.Snapshots(ctx, nil)

		require.NoError(t, err)
		want := []appointment.Snapshot{
			{Status: appointment.StatusBooked, Date: "2025-03-10"},
			{Status: appointment.StatusCanceled, Date: "2025-03-01"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("snapshots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("filters by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockAppointmentReadQueries(ctrl)
		store := readstore.NewAppointmentReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListAppointmentStatusDates(ctx, gomock.Any(), pgtype.Int8{Int64: 7, Valid: true}).Return(nil, nil)

		got, err := store.Snapshots(ctx, ptr.Of(int64(7)))

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// Mock DBTX for testing
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
