package appointment

// Snapshot is the part of an appointment the dashboard needs.
type Snapshot struct {
	Status Status
	Date   string
}

type Stats struct {
	Total     int `json:"total"`
	Canceled  int `json:"canceled"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
}

// Summarize counts appointments by outcome. Upcoming means booked and dated today or later.
func Summarize(items []Snapshot, today string) Stats {
	var s Stats
	for _, it := range items {
		s.Total++
		switch it.Status {
		case StatusCanceled:
			s.Canceled++
		case StatusCompleted:
			s.Completed++
		case StatusBooked:
			if it.Date >= today {
				s.Upcoming++
			}
		}
	}
	return s
}
