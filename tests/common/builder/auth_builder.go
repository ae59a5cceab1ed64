//go:build unit || e2e

package builder

import (
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/commands"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "user",
	}
}

func (a *AuthBuilder) AsAdmin() *AuthBuilder {
	a.Role = "admin"
	return a
}

// Build methods
func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}

func (a *AuthBuilder) BuildCommand(ip, userAgent string) commands.LoginRequest {
	return a.BuildDTO().ToCommand(ip, userAgent)
}
