// Package schedule holds the weekly operating-hours model shared by the
// branch availability service and its HTTP layer. A week maps upper-case
// day names to ordered open/close slots; a missing day means closed all day.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlot is one contiguous open-close window within a day, "HH:mm" 24h form.
type TimeSlot struct {
	Open  string `json:"open" validate:"required,hhmm"`
	Close string `json:"close" validate:"required,hhmm"`
}

// Week maps day keys (MONDAY..SUNDAY) to that day's slots.
type Week map[string][]TimeSlot

var (
	ErrUnknownDay       = errors.New("unknown day key")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrOverlappingSlots = errors.New("overlapping time slots")
)

// SlotError reports which day of a submitted week failed validation.
type SlotError struct {
	Day    string
	Detail string
	Err    error
}

func (e *SlotError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Day, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Day, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }

var dayKeys = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

var daySet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(dayKeys))
	for _, d := range dayKeys {
		s[d] = struct{}{}
	}
	return s
}()

// DayKey converts a time.Weekday into the canonical map key.
func DayKey(wd time.Weekday) string {
	return strings.ToUpper(wd.String())
}

// ParseClock parses "HH:mm" into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%q is not in HH:mm format", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%q is not in HH:mm format", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%q is not in HH:mm format", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return hour*60 + minute, nil
}

// MinuteOfDay returns t's clock time as minutes from midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Validate checks the whole week atomically: day keys must be known, every
// slot must close after it opens, and no two slots of the same day may
// overlap. Slots spanning midnight are not representable: close must be
// numerically greater than open within one day. Known limitation, kept so
// that evaluation stays a single-day comparison.
func (w Week) Validate() error {
	for day, slots := range w {
		if _, ok := daySet[day]; !ok {
			return &SlotError{Day: day, Err: ErrUnknownDay}
		}
		for _, slot := range slots {
			open, err := ParseClock(slot.Open)
			if err != nil {
				return &SlotError{Day: day, Err: ErrInvalidTimeRange, Detail: err.Error()}
			}
			close, err := ParseClock(slot.Close)
			if err != nil {
				return &SlotError{Day: day, Err: ErrInvalidTimeRange, Detail: err.Error()}
			}
			if close <= open {
				return &SlotError{
					Day:    day,
					Err:    ErrInvalidTimeRange,
					Detail: fmt.Sprintf("close %s must be after open %s", slot.Close, slot.Open),
				}
			}
		}
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				if slotsOverlap(slots[i], slots[j]) {
					return &SlotError{
						Day:    day,
						Err:    ErrOverlappingSlots,
						Detail: fmt.Sprintf("%s-%s and %s-%s", slots[i].Open, slots[i].Close, slots[j].Open, slots[j].Close),
					}
				}
			}
		}
	}
	return nil
}

func slotsOverlap(a, b TimeSlot) bool {
	aOpen, _ := ParseClock(a.Open)
	aClose, _ := ParseClock(a.Close)
	bOpen, _ := ParseClock(b.Open)
	bClose, _ := ParseClock(b.Close)
	return !(aClose <= bOpen || bClose <= aOpen)
}

// DefaultWeek is the schedule a branch starts with at onboarding.
func DefaultWeek() Week {
	w := make(Week, len(dayKeys))
	for _, day := range dayKeys {
		w[day] = []TimeSlot{{Open: "09:00", Close: "22:00"}}
	}
	return w
}
