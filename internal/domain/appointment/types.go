package appointment

import (
	"errors"
	"time"

	"salon-booking/internal/pkg/clock"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime       = errors.New("time is not an offered slot")
	ErrDateInPast        = errors.New("cannot book a date in the past")
	ErrSalonClosed       = errors.New("salon is closed on this date")
	ErrNoAvailableSlots  = errors.New("No available slots")
	ErrTerminalStatus    = errors.New("appointment is already completed or canceled")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAppointmentInPast = errors.New("cannot change the status of a past appointment")
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func (s Status) String() string { return string(s) }

// ParseDate accepts only the canonical YYYY-MM-DD form so that dates compare lexicographically.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(clock.DateLayout, s)
	if err != nil || d.Format(clock.DateLayout) != s {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
