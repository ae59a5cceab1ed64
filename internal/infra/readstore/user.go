package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	GetAccountByID(ctx context.Context, db query.DBTX, id int64) (query.Account, error)
	GetAccountByEmail(ctx context.Context, db query.DBTX, email string) (query.Account, error)
	ListLoginLogsByUser(ctx context.Context, db query.DBTX, arg query.ListLoginLogsByUserParams) ([]query.LoginLog, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetAccountByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.GetAccountByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) ListLoginLogs(ctx context.Context, userID int64, limit int32) ([]*queries.LoginLogView, error) {
	rows, err := r.queries.ListLoginLogsByUser(ctx, r.db, query.ListLoginLogsByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list login logs", err)
	}

	result := make([]*queries.LoginLogView, len(rows))
	for i, row := range rows {
		result[i] = &queries.LoginLogView{
			ID:        row.ID,
			UserID:    row.UserID,
			IPAddress: row.IpAddress,
			UserAgent: row.UserAgent,
			LoginTime: pgconv.TimeFromPgtype(row.LoginTime),
		}
	}
	return result, nil
}

func toUserView(row query.Account) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
