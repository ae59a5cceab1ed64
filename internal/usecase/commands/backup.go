package commands

import (
	"context"
	"fmt"
	"log/slog"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownBackupType = errs.New("backup type must be manual or scheduled")

type BackupResult struct {
	ID     int64  `json:"id"`
	Name   string `json:"backupName"`
	Size   int64  `json:"backupSize"`
	Type   string `json:"backupType"`
	Status string `json:"status"`
}

type BackupCommands interface {
	Run(ctx context.Context, backupType string) (*BackupResult, error)
	// RunIfDue starts a scheduled backup when auto backup is on and the last one is older
	// than the configured frequency. It reports whether a backup ran.
	RunIfDue(ctx context.Context) (bool, error)
}

type backupCommandsImpl struct {
	uow      shared.UnitOfWork
	exporter TableExporter
	clock    clock.Clock
}

func NewBackupCommands(uow shared.UnitOfWork, exporter TableExporter, clk clock.Clock) BackupCommands {
	return &backupCommandsImpl{
		uow:      uow,
		exporter: exporter,
		clock:    clk,
	}
}

func (uc *backupCommandsImpl) Run(ctx context.Context, backupType string) (*BackupResult, error) {
	if backupType != shared.BackupManual && backupType != shared.BackupScheduled {
		return nil, errs.Mark(ErrUnknownBackupType, errs.ErrDomainValidation)
	}

	name := uc.backupName()
	entry := shared.BackupLogEntry{Name: name, Type: backupType, Status: shared.BackupCompleted}

	size, exportErr := uc.exporter.Export(ctx, name)
	if exportErr != nil {
		slog.ErrorContext(ctx, "backup export failed", "backup", name, "error", exportErr)
		entry.Status = shared.BackupFailed
	}
	entry.Size = size

	id, err := shared.WithinResult(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.BackupLogs().Create(ctx, tx.DB(), entry)
	})
	metrics.RecordBackup(backupType, entry.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exportErr != nil {
		return nil, errs.Wrap(exportErr, "backup export failed")
	}

	return &BackupResult{
		ID:     id,
		Name:   name,
		Size:   size,
		Type:   backupType,
		Status: entry.Status,
	}, nil
}

func (uc *backupCommandsImpl) RunIfDue(ctx context.Context) (bool, error) {
	reads := uc.uow.CommandReads()

	current, err := reads.Settings(ctx)
	if err != nil {
		return false, err
	}
	last, err := reads.LastCompletedBackupAt(ctx)
	if err != nil {
		return false, err
	}
	if !current.BackupDue(last, uc.clock.Now()) {
		return false, nil
	}

	if _, err := uc.Run(ctx, shared.BackupScheduled); err != nil {
		return true, err
	}
	return true, nil
}

func (uc *backupCommandsImpl) backupName() string {
	return fmt.Sprintf("backup-%s-%s", uc.clock.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8])
}
