package appointment

// ValidateTransition reports why current cannot move to target, or nil when it can.
// Only booked appointments dated today or later may change, and only to completed or canceled.
func ValidateTransition(current, target Status, appointmentDate, today string) error {
	if current.IsTerminal() {
		return ErrTerminalStatus
	}
	if current != StatusBooked || !target.IsTerminal() {
		return ErrInvalidTransition
	}
	if appointmentDate < today {
		return ErrAppointmentInPast
	}
	return nil
}

func CanTransition(current, target Status, appointmentDate, today string) bool {
	return ValidateTransition(current, target, appointmentDate, today) == nil
}
