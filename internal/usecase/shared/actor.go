package shared

import (
	"salon-booking/internal/domain/user"
)

// Actor is the authenticated caller of a usecase, taken from the request token.
type Actor struct {
	ID   int64
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
