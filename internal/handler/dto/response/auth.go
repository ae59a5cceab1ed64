package response

import (
	"salon-booking/internal/usecase/queries"
)

type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone,omitempty"`
	IsActive  bool    `json:"isActive"`
	LastLogin *string `json:"lastLogin,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return mustCopy[UserResponse](v)
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type RegisterResponse struct {
	ID int64 `json:"id"`
}

type LoginLogResponse struct {
	ID        int64  `json:"id"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	LoginTime string `json:"loginTime"`
}

func FromLoginLogs(items []*queries.LoginLogView) []*LoginLogResponse {
	return mustCopySlice[queries.LoginLogView, LoginLogResponse](items)
}
