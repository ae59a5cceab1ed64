//go:build unit

package appointment_test

import (
	"testing"

	"salon-booking/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	const today = "2024-06-01"

	tests := []struct {
		name    string
		current appointment.Status
		target  appointment.Status
		date    string
		errIs   error
	}{
		{name: "booked → completed", current: appointment.StatusBooked, target: appointment.StatusCompleted, date: today},
		{name: "booked → canceled", current: appointment.StatusBooked, target: appointment.StatusCanceled, date: "2024-06-30"},
		{name: "booked → booked", current: appointment.StatusBooked, target: appointment.StatusBooked, date: today, errIs: appointment.ErrInvalidTransition},
		{name: "unknown target", current: appointment.StatusBooked, target: "archived", date: today, errIs: appointment.ErrInvalidTransition},
		{name: "completed is terminal", current: appointment.StatusCompleted, target: appointment.StatusBooked, date: today, errIs: appointment.ErrTerminalStatus},
		{name: "canceled is terminal", current: appointment.StatusCanceled, target: appointment.StatusCompleted, date: today, errIs: appointment.ErrTerminalStatus},
		{name: "past-dated booking is frozen", current: appointment.StatusBooked, target: appointment.StatusCanceled, date: "2024-05-31", errIs: appointment.ErrAppointmentInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := appointment.ValidateTransition(tt.current, tt.target, tt.date, today)
			if tt.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.errIs)
			}
			assert.Equal(t, tt.errIs == nil, appointment.CanTransition(tt.current, tt.target, tt.date, today))
		})
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	a, err := appointment.NewAppointment(3, 7, 2, "2024-06-01", "9:00 AM")
	require.NoError(t, err)
	assert.Equal(t, appointment.StatusBooked, a.Status())
	assert.True(t, a.IsBookedBy(3))
	assert.True(t, a.IsOwnedBy(2))

	require.NoError(t, a.TransitionTo(appointment.StatusCompleted, "2024-06-01"))
	assert.Equal(t, appointment.StatusCompleted, a.Status())

	err = a.TransitionTo(appointment.StatusBooked, "2024-06-01")
	require.ErrorIs(t, err, appointment.ErrTerminalStatus)
	assert.Equal(t, appointment.StatusCompleted, a.Status())
}

func TestNewAppointmentValidation(t *testing.T) {
	_, err := appointment.NewAppointment(3, 7, 2, "2024-6-1", "9:00 AM")
	assert.ErrorIs(t, err, appointment.ErrInvalidDate)

	_, err = appointment.NewAppointment(3, 7, 2, "2024-06-01", "")
	assert.ErrorIs(t, err, appointment.ErrInvalidTime)

	_, err = appointment.NewStatus("pending")
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
}
