package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBackupLog = `
INSERT INTO backup_logs (backup_name, backup_size, backup_type, status)
VALUES ($1, $2, $3, $4)
RETURNING id, backup_name, backup_size, backup_type, status, created_at`

type CreateBackupLogParams struct {
	BackupName string
	BackupSize int64
	BackupType string
	Status     string
}

func (q *Queries) CreateBackupLog(ctx context.Context, db DBTX, arg CreateBackupLogParams) (BackupLog, error) {
	var i BackupLog
	err := db.QueryRow(ctx, createBackupLog,
		arg.BackupName,
		arg.BackupSize,
		arg.BackupType,
		arg.Status,
	).Scan(
		&i.ID,
		&i.BackupName,
		&i.BackupSize,
		&i.BackupType,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const listBackupLogs = `
SELECT id, backup_name, backup_size, backup_type, status, created_at
FROM backup_logs
ORDER BY created_at DESC, id DESC
LIMIT $1`

func (q *Queries) ListBackupLogs(ctx context.Context, db DBTX, limit int32) ([]BackupLog, error) {
	rows, err := db.Query(ctx, listBackupLogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BackupLog{}
	for rows.Next() {
		var i BackupLog
		if err := rows.Scan(
			&i.ID,
			&i.BackupName,
			&i.BackupSize,
			&i.BackupType,
			&i.Status,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getLastCompletedBackupAt = `SELECT MAX(created_at) FROM backup_logs WHERE status = 'completed'`

// GetLastCompletedBackupAt returns an invalid timestamp when no backup has completed yet.
func (q *Queries) GetLastCompletedBackupAt(ctx context.Context, db DBTX) (pgtype.Timestamptz, error) {
	var at pgtype.Timestamptz
	err := db.QueryRow(ctx, getLastCompletedBackupAt).Scan(&at)
	return at, err
}
