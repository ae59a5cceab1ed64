package auth

import (
	"errors"

	"salon-booking/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Credentials carries the role the caller is signing in as; a mismatch with the stored role fails the login.
type Credentials struct {
	email    user.Email
	password user.Password
	role     user.Role
}

func NewCredentials(emailStr, passwordStr, roleStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
		role:     role,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

func (c Credentials) Role() user.Role {
	return c.role
}
