package schedule

import "time"

// Status is the derived answer to "can this branch take orders right now".
type Status string

const (
	StatusOpen    Status = "OPEN"
	StatusOffline Status = "OFFLINE"
	StatusClosed  Status = "CLOSED"
)

// OpenAt reports whether minute falls inside one of the slots. Both
// boundaries are exclusive: a branch is not open at exactly its open or
// close time. That is the contract the clients were built against.
func OpenAt(slots []TimeSlot, minute int) bool {
	for _, slot := range slots {
		open, err := ParseClock(slot.Open)
		if err != nil {
			continue
		}
		close, err := ParseClock(slot.Close)
		if err != nil {
			continue
		}
		if minute > open && minute < close {
			return true
		}
	}
	return false
}

// StatusOf derives the three-state status. Outside the configured hours the
// vendor's manual toggle is not consulted.
func StatusOf(isOpen, withinHours bool) Status {
	if !withinHours {
		return StatusClosed
	}
	if isOpen {
		return StatusOpen
	}
	return StatusOffline
}

// NextOpenTime scans today and the following days (wrapping the week) and
// returns the open time of the first upcoming slot. For today only slots
// that have not started yet count; for later days the day's first slot wins.
// The scan revisits today once after the wrap, so a week whose only hours
// are today still answers with today's first slot next week.
func NextOpenTime(w Week, today time.Weekday, minute int) (string, bool) {
	for i := 0; i <= 7; i++ {
		day := time.Weekday((int(today) + i) % 7)
		slots := w[DayKey(day)]
		if i == 0 {
			for _, slot := range slots {
				open, err := ParseClock(slot.Open)
				if err != nil {
					continue
				}
				if open > minute {
					return slot.Open, true
				}
			}
			continue
		}
		if len(slots) > 0 {
			return slots[0].Open, true
		}
	}
	return "", false
}

// NextCloseTime returns the close time of the first of today's slots whose
// close is still ahead of minute, or false once the day is over.
func NextCloseTime(slots []TimeSlot, minute int) (string, bool) {
	for _, slot := range slots {
		close, err := ParseClock(slot.Close)
		if err != nil {
			continue
		}
		if minute < close {
			return slot.Close, true
		}
	}
	return "", false
}
