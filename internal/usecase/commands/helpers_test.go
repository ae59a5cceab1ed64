//go:build unit

package commands_test

import (
	"context"

	"salon-booking/internal/usecase/shared"
	sharedmock "salon-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks runs every UnitOfWork.Within callback against one mocked Tx.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	accounts      *sharedmock.MockAccountRepository
	salons        *sharedmock.MockSalonRepository
	appointments  *sharedmock.MockAppointmentRepository
	settings      *sharedmock.MockSettingsRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	backupLogs    *sharedmock.MockBackupLogRepository
	loginLogs     *sharedmock.MockLoginLogRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		accounts:      sharedmock.NewMockAccountRepository(ctrl),
		salons:        sharedmock.NewMockSalonRepository(ctrl),
		appointments:  sharedmock.NewMockAppointmentRepository(ctrl),
		settings:      sharedmock.NewMockSettingsRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		backupLogs:    sharedmock.NewMockBackupLogRepository(ctrl),
		loginLogs:     sharedmock.NewMockLoginLogRepository(ctrl),
	}

	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Accounts().Return(m.accounts).AnyTimes()
	m.tx.EXPECT().Salons().Return(m.salons).AnyTimes()
	m.tx.EXPECT().Appointments().Return(m.appointments).AnyTimes()
	m.tx.EXPECT().Settings().Return(m.settings).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().BackupLogs().Return(m.backupLogs).AnyTimes()
	m.tx.EXPECT().LoginLogs().Return(m.loginLogs).AnyTimes()
	return m
}
