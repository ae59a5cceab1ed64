package request

import (
	"salon-booking/internal/usecase/commands"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
}

func (r RegisterRequest) ToCommand() commands.RegisterRequest {
	role := r.Role
	if role == "" {
		role = "user"
	}
	return commands.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     role,
		Phone:    r.Phone,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=user admin"`
}

func (r LoginRequest) ToCommand(ip, userAgent string) commands.LoginRequest {
	return commands.LoginRequest{
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		IPAddress: ip,
		UserAgent: userAgent,
	}
}
