package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db query.DBTX, arg query.GetIdempotencyKeyParams) (query.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint string) (*shared.IdempotencyRecord, error) {
	params := query.GetIdempotencyKeyParams{
		Key:      pgconv.UUIDToPgtype(key),
		UserID:   userID,
		Endpoint: endpoint,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:                 uuid.UUID(row.Key.Bytes),
		UserID:              row.UserID,
		Endpoint:            row.Endpoint,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultAppointmentID: pgconv.Int8PtrFromPgtype(row.ResultAppointmentID),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
