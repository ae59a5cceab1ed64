//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository"
	repositorymock "salon-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Row lock Tests
// =============================================================================

func TestSalonRepository_Locks(t *testing.T) {
	ctx := context.Background()

	type lockFunc func(*repository.SalonRepository, query.DBTX) error
	forDelete := func(r *repository.SalonRepository, tx query.DBTX) error { return r.LockForDelete(ctx, tx, 10) }
	forBooking := func(r *repository.SalonRepository, tx query.DBTX) error { return r.LockForBooking(ctx, tx, 10) }

	testCases := []struct {
		name          string
		lock          lockFunc
		setupMock     func(*repositorymock.MockSalonWriteQueries, query.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: delete takes FOR UPDATE",
			lock: forDelete,
			setupMock: func(mock *repositorymock.MockSalonWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockSalonForUpdate(ctx, tx, int64(10)).Return(int64(10), nil)
			},
		},
		{
			name: "success: booking takes FOR KEY SHARE",
			lock: forBooking,
			setupMock: func(mock *repositorymock.MockSalonWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockSalonKeyShare(ctx, tx, int64(10)).Return(int64(10), nil)
			},
		},
		{
			name: "error: salon already deleted before delete lock",
			lock: forDelete,
			setupMock: func(mock *repositorymock.MockSalonWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockSalonForUpdate(ctx, tx, int64(10)).Return(int64(0), pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: salon deleted before booking lock",
			lock: forBooking,
			setupMock: func(mock *repositorymock.MockSalonWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockSalonKeyShare(ctx, tx, int64(10)).Return(int64(0), pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			lock: forBooking,
			setupMock: func(mock *repositorymock.MockSalonWriteQueries, tx query.DBTX) {
				mock.EXPECT().LockSalonKeyShare(ctx, tx, int64(10)).Return(int64(0), errors.New("lock timeout"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSalonWriteQueries(ctrl)
			tx := &mockDBTX{}
			repo := repository.NewSalonRepository(mockQueries, tx)
			tc.setupMock(mockQueries, tx)

			err := tc.lock(repo, tx)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
