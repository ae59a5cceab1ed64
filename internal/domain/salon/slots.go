package salon

import (
	"slices"
	"time"
)

const SlotLabelLayout = "3:04 PM"

// EnumerateSlots lists bookable slot labels on date, starting at start and stepping by
// slotDuration minutes while the slot start is before end. The last slot may run past end.
// Break windows are not excluded.
func EnumerateSlots(date time.Time, start, end ClockTime, slotDuration int) []string {
	if slotDuration <= 0 || !start.Before(end) {
		return []string{}
	}
	step := time.Duration(slotDuration) * time.Minute
	stop := end.On(date)

	slots := make([]string, 0, (end.Minutes()-start.Minutes()+slotDuration-1)/slotDuration)
	for cur := start.On(date); cur.Before(stop); cur = cur.Add(step) {
		slots = append(slots, cur.Format(SlotLabelLayout))
	}
	return slots
}

func (s *Salon) IsWorkingDay(date time.Time) bool {
	return s.schedule.WorkingDays.Includes(date.Weekday())
}

// Slots returns the labels for date, or an empty list when the salon is closed that day.
func (s *Salon) Slots(date time.Time) []string {
	if !s.IsWorkingDay(date) {
		return []string{}
	}
	return EnumerateSlots(date, s.schedule.Start, s.schedule.End, s.schedule.SlotDuration)
}

func (s *Salon) HasSlot(date time.Time, label string) bool {
	return slices.Contains(s.Slots(date), label)
}
