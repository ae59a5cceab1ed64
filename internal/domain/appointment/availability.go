package appointment

type Availability struct {
	Capacity  int
	Booked    int
	Remaining int
}

// CheckAvailability compares the existing bookings of a slot against its capacity.
func CheckAvailability(capacity, existing int) (Availability, error) {
	a := Availability{Capacity: capacity, Booked: existing}
	if existing >= capacity {
		return a, ErrNoAvailableSlots
	}
	a.Remaining = capacity - existing
	return a, nil
}
