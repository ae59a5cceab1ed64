package request

import (
	"salon-booking/internal/usecase/commands"
)

// UpdateProfileRequest changes only the provided fields; an empty phone clears it.
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone" binding:"omitempty,max=20"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" binding:"omitempty,min=8"`
}

func (r UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}
