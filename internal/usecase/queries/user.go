package queries

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
	ListLoginLogs(ctx context.Context, userID int64, limit int32) ([]*LoginLogView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	ListLoginLogs(ctx context.Context, userID int64, limit int32) ([]*LoginLogView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) ListLoginLogs(ctx context.Context, userID int64, limit int32) ([]*LoginLogView, error) {
	limit, err := ValidateLimit(limit, DefaultLoginLogLimit, MaxListLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return q.readStore.ListLoginLogs(ctx, userID, limit)
}
