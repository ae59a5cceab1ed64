package repository

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/usecase/shared"
)

type BackupLogWriteQueries interface {
	CreateBackupLog(ctx context.Context, db query.DBTX, arg query.CreateBackupLogParams) (query.BackupLog, error)
}

type BackupLogRepository struct {
	queries BackupLogWriteQueries
	db      query.DBTX
}

func NewBackupLogRepository(queries BackupLogWriteQueries, db query.DBTX) *BackupLogRepository {
	return &BackupLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BackupLogRepository) Create(ctx context.Context, tx query.DBTX, entry shared.BackupLogEntry) (int64, error) {
	params := query.CreateBackupLogParams{
		BackupName: entry.Name,
		BackupSize: entry.Size,
		BackupType: entry.Type,
		Status:     entry.Status,
	}

	row, err := r.queries.CreateBackupLog(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create backup log", err)
	}
	return row.ID, nil
}

type LoginLogWriteQueries interface {
	CreateLoginLog(ctx context.Context, db query.DBTX, arg query.CreateLoginLogParams) error
}

type LoginLogRepository struct {
	queries LoginLogWriteQueries
	db      query.DBTX
}

func NewLoginLogRepository(queries LoginLogWriteQueries, db query.DBTX) *LoginLogRepository {
	return &LoginLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LoginLogRepository) Create(ctx context.Context, tx query.DBTX, userID int64, ipAddress, userAgent string) error {
	params := query.CreateLoginLogParams{
		UserID:    userID,
		IpAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := r.queries.CreateLoginLog(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create login log", err)
	}
	return nil
}
