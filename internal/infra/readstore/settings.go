package readstore

import (
	"context"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"
)

type SettingsReadQueries interface {
	GetSystemSettings(ctx context.Context, db query.DBTX) (query.SystemSetting, error)
	ListBackupLogs(ctx context.Context, db query.DBTX, limit int32) ([]query.BackupLog, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      query.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db query.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

// Get falls back to the defaults until settings have been saved once.
func (r *SettingsReadStore) Get(ctx context.Context) (settings.Settings, error) {
	row, err := r.queries.GetSystemSettings(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, infra.WrapRepoErr("failed to get system settings", err)
	}
	return converter.SettingsFromInfra(row), nil
}

func (r *SettingsReadStore) ListBackups(ctx context.Context, limit int32) ([]*queries.BackupLogView, error) {
	rows, err := r.queries.ListBackupLogs(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list backup logs", err)
	}

	result := make([]*queries.BackupLogView, len(rows))
	for i, row := range rows {
		result[i] = &queries.BackupLogView{
			ID:         row.ID,
			BackupName: row.BackupName,
			BackupSize: row.BackupSize,
			BackupType: row.BackupType,
			Status:     row.Status,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
