package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const tryInsertIdempotencyKey = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id, endpoint) DO NOTHING`

type TryInsertIdempotencyKeyParams struct {
	Key         pgtype.UUID
	UserID      int64
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

// TryInsertIdempotencyKey reports the number of inserted rows; zero means the key already exists.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `
SELECT key, user_id, endpoint, request_hash, status, result_appointment_id, expires_at, created_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2 AND endpoint = $3`

type GetIdempotencyKeyParams struct {
	Key      pgtype.UUID
	UserID   int64
	Endpoint string
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKey, error) {
	var i IdempotencyKey
	err := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint).Scan(
		&i.Key,
		&i.UserID,
		&i.Endpoint,
		&i.RequestHash,
		&i.Status,
		&i.ResultAppointmentID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const updateIdempotencyKeyCompleted = `
UPDATE idempotency_keys SET status = 'completed', result_appointment_id = $4
WHERE key = $1 AND user_id = $2 AND endpoint = $3`

type UpdateIdempotencyKeyCompletedParams struct {
	Key                 pgtype.UUID
	UserID              int64
	Endpoint            string
	ResultAppointmentID pgtype.Int8
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) error {
	_, err := db.Exec(ctx, updateIdempotencyKeyCompleted,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.ResultAppointmentID,
	)
	return err
}

// Re-arms an expired key for a new request.
const claimExpiredIdempotencyKey = `
UPDATE idempotency_keys
SET status = 'processing', request_hash = $4, result_appointment_id = NULL, expires_at = $5
WHERE key = $1 AND user_id = $2 AND endpoint = $3 AND expires_at < NOW()`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         pgtype.UUID
	UserID      int64
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at < NOW()`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
