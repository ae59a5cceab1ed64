package converter

import (
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) query.CreateAccountParams {
	return query.CreateAccountParams{
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		IsActive:     u.IsActive(),
	}
}

func UserToProfileParams(u *user.User) query.UpdateAccountProfileParams {
	return query.UpdateAccountProfileParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		PasswordHash: u.PasswordHash(),
	}
}

// UserFromInfra trusts stored values; they were validated when written.
func UserFromInfra(row query.Account) *user.User {
	name, _ := user.NewName(row.Name)
	email, _ := user.NewEmail(row.Email)
	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		user.Role(row.Role),
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
