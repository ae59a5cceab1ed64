package repository

import (
	"context"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db query.DBTX, arg query.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db query.DBTX, arg query.UpdateIdempotencyKeyCompletedParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db query.DBTX, arg query.ClaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db query.DBTX) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      query.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db query.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert reports whether the key was newly recorded.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := query.TryInsertIdempotencyKeyParams{
		Key:         pgconv.UUIDToPgtype(key),
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return inserted > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint string, appointmentID int64) error {
	params := query.UpdateIdempotencyKeyCompletedParams{
		Key:                 pgconv.UUIDToPgtype(key),
		UserID:              userID,
		Endpoint:            endpoint,
		ResultAppointmentID: pgtype.Int8{Int64: appointmentID, Valid: true},
	}

	if err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx query.DBTX, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := query.ClaimExpiredIdempotencyKeyParams{
		Key:         pgconv.UUIDToPgtype(key),
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	claimed, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return claimed > 0, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
