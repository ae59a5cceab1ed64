//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra/query"
	"salon-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        *string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	var phone *string
	if u.Phone != nil {
		phone, err = user.NewPhone(*u.Phone)
		if err != nil {
			return nil, err
		}
	}

	return user.NewUser(name, email, u.PasswordHash, role, phone), nil
}

// BuildPersisted returns the account as loaded from storage, with ID and timestamps set.
func (u *UserBuilder) BuildPersisted() *user.User {
	now := time.Now()
	return user.ReconstructUser(
		u.ID,
		mustName(u.Name),
		mustEmail(u.Email),
		u.PasswordHash,
		user.Role(u.Role),
		u.Phone,
		nil,
		u.IsActive,
		now,
		now,
	)
}

func (u *UserBuilder) BuildInfra() query.Account {
	now := time.Now()
	var phone pgtype.Text
	if u.Phone != nil {
		phone = pgtype.Text{String: *u.Phone, Valid: true}
	}

	return query.Account{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Phone:        phone,
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		CreatedAt: time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func mustName(s string) user.Name {
	n, err := user.NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func mustEmail(s string) user.Email {
	e, err := user.NewEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}
