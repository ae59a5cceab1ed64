package user

import (
	"time"
)

type User struct {
	id           int64
	name         Name
	email        Email
	passwordHash string
	role         Role
	phone        *string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, phone *string) *User {
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		isActive:     true,
	}
}

func ReconstructUser(
	id int64,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	phone *string,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangeProfile replaces name, email and phone.
func (u *User) ChangeProfile(name Name, email Email, phone *string) {
	u.name = name
	u.email = email
	u.phone = phone
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *User) ID() int64             { return u.id }
func (u *User) Name() Name            { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Phone() *string        { return u.phone }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
