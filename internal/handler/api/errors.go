package api

import (
	"net/http"
	"strconv"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errs.New("request is not authenticated")
	errInvalidID       = errs.New("path id must be a positive integer")
)

type errorMapping struct {
	targets []error
	status  int
	// message is used as is; empty means the error's own text is safe to show.
	message string
}

var errorMappings = []errorMapping{
	{targets: []error{queries.ErrNoAvailableSlots}, status: http.StatusConflict, message: "No available slots"},
	{targets: []error{errs.ErrMaintenanceMode}, status: http.StatusServiceUnavailable, message: "Service is under maintenance"},
	{targets: []error{commands.ErrInvalidCredentials}, status: http.StatusUnauthorized, message: "Invalid email, password or role"},
	{targets: []error{commands.ErrUserInactive, queries.ErrUserInactive}, status: http.StatusUnauthorized, message: "Account is inactive"},
	{targets: []error{commands.ErrRegistrationClosed}, status: http.StatusForbidden, message: "Registration is currently disabled"},
	{
		targets: []error{errs.ErrForbidden, commands.ErrSalonForbidden, commands.ErrAppointmentForbidden, queries.ErrAppointmentForbidden},
		status:  http.StatusForbidden,
		message: "You do not have permission to perform this action",
	},
	{
		targets: []error{
			commands.ErrSalonNotFound, queries.ErrSalonNotFound,
			commands.ErrAppointmentNotFound, queries.ErrAppointmentNotFound,
			commands.ErrUserNotFound, queries.ErrUserNotFound,
		},
		status: http.StatusNotFound,
	},
	{
		targets: []error{
			commands.ErrEmailTaken,
			commands.ErrSalonHasUpcomingAppointments,
			commands.ErrAppointmentStatusConflict,
			errs.ErrIdempotencyConflict,
			errs.ErrIdempotencyInProgress,
		},
		status: http.StatusConflict,
	},
	{targets: []error{commands.ErrInvalidCurrentPassword, errs.ErrDomainValidation}, status: http.StatusBadRequest},
}

// respondError maps a usecase error onto the failure envelope. Unknown errors become a 500
// without leaking their text.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.IsAny(err, m.targets...) {
			continue
		}
		msg := m.message
		if msg == "" {
			msg = errs.Message(err)
		}
		httperr.AbortWithError(c, m.status, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func respondUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
