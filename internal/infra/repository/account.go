package repository

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/pgconv"
)

type AccountWriteQueries interface {
	CreateAccount(ctx context.Context, db query.DBTX, arg query.CreateAccountParams) (query.Account, error)
	UpdateAccountProfile(ctx context.Context, db query.DBTX, arg query.UpdateAccountProfileParams) (query.Account, error)
	UpdateAccountLastLogin(ctx context.Context, db query.DBTX, id int64) error
}

type AccountRepository struct {
	queries AccountWriteQueries
	db      query.DBTX
}

func NewAccountRepository(queries AccountWriteQueries, db query.DBTX) *AccountRepository {
	return &AccountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AccountRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) (int64, error) {
	row, err := r.queries.CreateAccount(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create account", err)
	}
	return row.ID, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, tx query.DBTX, u *user.User) error {
	_, err := r.queries.UpdateAccountProfile(ctx, tx, converter.UserToProfileParams(u))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update account profile", err)
	}
	return nil
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, tx query.DBTX, userID int64) error {
	if err := r.queries.UpdateAccountLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update account last login", err)
	}
	return nil
}
