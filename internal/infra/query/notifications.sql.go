package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
		arg.Status,
	)
	return err
}

// Rows stay locked for the claiming transaction; concurrent dispatchers skip them.
const claimPendingNotificationJobs = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'pending' AND run_at <= NOW()
ORDER BY run_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimPendingNotificationJobs(ctx context.Context, db DBTX, limit int32) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimPendingNotificationJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []NotificationJob{}
	for rows.Next() {
		var i NotificationJob
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const markNotificationJobSent = `
UPDATE notification_jobs SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = NOW()
WHERE id = $1`

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, markNotificationJobSent, id)
	return err
}

const markNotificationJobFailed = `
UPDATE notification_jobs SET
    attempts = attempts + 1,
    status = CASE WHEN attempts + 1 >= $3 THEN 'failed' ELSE 'pending' END,
    last_error = $2,
    run_at = $4,
    updated_at = NOW()
WHERE id = $1`

type MarkNotificationJobFailedParams struct {
	ID          int64
	LastError   pgtype.Text
	MaxAttempts int32
	RetryAt     pgtype.Timestamptz
}

func (q *Queries) MarkNotificationJobFailed(ctx context.Context, db DBTX, arg MarkNotificationJobFailedParams) error {
	_, err := db.Exec(ctx, markNotificationJobFailed,
		arg.ID,
		arg.LastError,
		arg.MaxAttempts,
		arg.RetryAt,
	)
	return err
}
