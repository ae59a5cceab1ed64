package repository

import (
	"context"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository/converter"
)

type SettingsWriteQueries interface {
	UpsertSystemSettings(ctx context.Context, db query.DBTX, arg query.UpsertSystemSettingsParams) (query.SystemSetting, error)
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      query.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db query.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) Save(ctx context.Context, tx query.DBTX, s settings.Settings) error {
	if _, err := r.queries.UpsertSystemSettings(ctx, tx, converter.SettingsToUpsertParams(s)); err != nil {
		return infra.WrapRepoErr("failed to save system settings", err)
	}
	return nil
}
