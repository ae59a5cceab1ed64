//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/readstore"
	readstoremock "salon-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByEmail(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockUserReadQueries)
		expectedHash  string
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: returns view and password hash",
			setupMock: func(mock *readstoremock.MockUserReadQueries) {
				mock.EXPECT().GetAccountByEmail(ctx, gomock.Any(), "alice@example.com").Return(query.Account{
					ID:           7,
					Name:         "Alice",
					Email:        "alice@example.com",
					PasswordHash: "hashed",
					Role:         "user",
					Phone:        pgtype.Text{String: "+15550001", Valid: true},
					IsActive:     true,
				}, nil)
			},
			expectedHash: "hashed",
		},
		{
			name: "error: unknown email",
			setupMock: func(mock *readstoremock.MockUserReadQueries) {
				mock.EXPECT().GetAccountByEmail(ctx, gomock.Any(), "alice@example.com").Return(query.Account{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockUserReadQueries) {
				mock.EXPECT().GetAccountByEmail(ctx, gomock.Any(), "alice@example.com").Return(query.Account{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, hash, err := store.FindByEmail(ctx, "alice@example.com")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHash, hash)
			assert.Equal(t, int64(7), view.ID)
			require.NotNil(t, view.Phone)
			assert.Equal(t, "+15550001", *view.Phone)
		})
	}
}

func TestUserReadStore_ListLoginLogs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
	store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})
	loginAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().ListLoginLogsByUser(ctx, gomock.Any(), query.ListLoginLogsByUserParams{UserID: 7, Limit: 10}).
		Return([]query.LoginLog{{ID: 1, UserID: 7, IpAddress: "10.0.0.1", UserAgent: "curl", LoginTime: pgtype.Timestamptz{Time: loginAt, Valid: true}}}, nil)

	logs, err := store.ListLoginLogs(ctx, 7, 10)

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "10.0.0.1", logs[0].IPAddress)
	assert.Equal(t, loginAt, logs[0].LoginTime)
}
