package appointment

import (
	"time"
)

type Appointment struct {
	id         int64
	customerID int64
	salonID    int64
	ownerID    int64
	date       string
	time       string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAppointment creates a booked appointment. Slot and capacity checks happen in the
// booking workflow before this is called.
func NewAppointment(customerID, salonID, ownerID int64, date, slot string) (*Appointment, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	if slot == "" {
		return nil, ErrInvalidTime
	}
	return &Appointment{
		customerID: customerID,
		salonID:    salonID,
		ownerID:    ownerID,
		date:       date,
		time:       slot,
		status:     StatusBooked,
	}, nil
}

func ReconstructAppointment(
	id, customerID, salonID, ownerID int64,
	date, slot string,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		customerID: customerID,
		salonID:    salonID,
		ownerID:    ownerID,
		date:       date,
		time:       slot,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo moves the appointment to target if the state machine allows it.
func (a *Appointment) TransitionTo(target Status, today string) error {
	if err := ValidateTransition(a.status, target, a.date, today); err != nil {
		return err
	}
	a.status = target
	return nil
}

func (a *Appointment) IsBookedBy(customerID int64) bool { return a.customerID == customerID }
func (a *Appointment) IsOwnedBy(ownerID int64) bool     { return a.ownerID == ownerID }

func (a *Appointment) ID() int64            { return a.id }
func (a *Appointment) CustomerID() int64    { return a.customerID }
func (a *Appointment) SalonID() int64       { return a.salonID }
func (a *Appointment) OwnerID() int64       { return a.ownerID }
func (a *Appointment) Date() string         { return a.date }
func (a *Appointment) Time() string         { return a.time }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }
