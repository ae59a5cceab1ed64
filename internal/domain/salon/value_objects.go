package salon

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidName         = errors.New("salon name is required")
	ErrInvalidClockTime    = errors.New("time must be in HH:MM format")
	ErrInvalidHours        = errors.New("start time must be before end time")
	ErrInvalidBreak        = errors.New("break window must lie within working hours")
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")
	ErrInvalidCapacity     = errors.New("max bookings per slot must be at least 1")
	ErrInvalidPriceRange   = errors.New("min service price must not exceed max service price")
	ErrInvalidWorkingDay   = errors.New("invalid working day")
	ErrInvalidOfferStatus  = errors.New("offer status must be active or inactive")
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
}

func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) Before(o ClockTime) bool { return c.minutes < o.minutes }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// On places the clock time on the calendar day of d. The result is in UTC so that
// slot arithmetic never crosses a DST boundary.
func (c ClockTime) On(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, c.minutes/60, c.minutes%60, 0, 0, time.UTC)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WorkingDays is a set of lowercase weekday names.
type WorkingDays struct {
	days []string
}

func NewWorkingDays(in []string) (WorkingDays, error) {
	seen := make(map[string]struct{}, len(in))
	days := make([]string, 0, len(in))
	for _, d := range in {
		d = strings.ToLower(strings.TrimSpace(d))
		if _, ok := weekdayNames[d]; !ok {
			return WorkingDays{}, fmt.Errorf("%w: %q", ErrInvalidWorkingDay, d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return WorkingDays{days: days}, nil
}

func (w WorkingDays) Values() []string {
	out := make([]string, len(w.days))
	copy(out, w.days)
	return out
}

func (w WorkingDays) Includes(wd time.Weekday) bool {
	for _, d := range w.days {
		if weekdayNames[d] == wd {
			return true
		}
	}
	return false
}

type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferInactive OfferStatus = "inactive"
)

func NewOfferStatus(s string) (OfferStatus, error) {
	switch OfferStatus(s) {
	case OfferActive, OfferInactive:
		return OfferStatus(s), nil
	case "":
		return OfferActive, nil
	}
	return "", ErrInvalidOfferStatus
}

func (s OfferStatus) String() string { return string(s) }

type PriceRange struct {
	min float64
	max float64
}

func NewPriceRange(min, max float64) (PriceRange, error) {
	if min < 0 || max < 0 || min > max {
		return PriceRange{}, ErrInvalidPriceRange
	}
	return PriceRange{min: min, max: max}, nil
}

func (p PriceRange) Min() float64 { return p.min }
func (p PriceRange) Max() float64 { return p.max }
