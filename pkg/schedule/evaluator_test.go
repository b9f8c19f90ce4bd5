package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAt_ExclusiveBoundaries(t *testing.T) {
	slots := []TimeSlot{{Open: "09:00", Close: "22:00"}}

	assert.False(t, OpenAt(slots, 9*60), "not open at exactly the open time")
	assert.True(t, OpenAt(slots, 9*60+1), "open one minute after opening")
	assert.True(t, OpenAt(slots, 22*60-1), "open one minute before closing")
	assert.False(t, OpenAt(slots, 22*60), "not open at exactly the close time")
	assert.False(t, OpenAt(slots, 8*60))
	assert.False(t, OpenAt(slots, 23*60))
}

func TestOpenAt_LunchGap(t *testing.T) {
	slots := []TimeSlot{
		{Open: "09:00", Close: "13:00"},
		{Open: "14:00", Close: "22:00"},
	}

	assert.True(t, OpenAt(slots, 10*60))
	assert.False(t, OpenAt(slots, 13*60+30), "closed during the gap")
	assert.True(t, OpenAt(slots, 15*60))
}

func TestOpenAt_NoSlots(t *testing.T) {
	assert.False(t, OpenAt(nil, 12*60))
	assert.False(t, OpenAt([]TimeSlot{}, 12*60))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusClosed, StatusOf(true, false))
	assert.Equal(t, StatusClosed, StatusOf(false, false))
	assert.Equal(t, StatusOpen, StatusOf(true, true))
	assert.Equal(t, StatusOffline, StatusOf(false, true))
}

func TestNextOpenTime_LaterSlotToday(t *testing.T) {
	w := Week{
		"MONDAY": {
			{Open: "09:00", Close: "13:00"},
			{Open: "14:00", Close: "22:00"},
		},
	}

	next, ok := NextOpenTime(w, time.Monday, 13*60+30)
	require.True(t, ok)
	assert.Equal(t, "14:00", next)
}

func TestNextOpenTime_SkipsStartedSlotsToday(t *testing.T) {
	w := Week{
		"MONDAY":  {{Open: "09:00", Close: "22:00"}},
		"TUESDAY": {{Open: "10:00", Close: "22:00"}},
	}

	// 12:00 Monday: today's only slot already started, so the answer is
	// Tuesday's opening, not a time in the past.
	next, ok := NextOpenTime(w, time.Monday, 12*60)
	require.True(t, ok)
	assert.Equal(t, "10:00", next)
}

func TestNextOpenTime_WrapsWeek(t *testing.T) {
	w := Week{
		"MONDAY": {{Open: "09:00", Close: "22:00"}},
	}

	// Wednesday evening: nothing until next Monday.
	next, ok := NextOpenTime(w, time.Wednesday, 23*60)
	require.True(t, ok)
	assert.Equal(t, "09:00", next)
}

func TestNextOpenTime_WrapsToSameDay(t *testing.T) {
	w := Week{
		"MONDAY": {{Open: "09:00", Close: "22:00"}},
	}

	// Monday night, the only configured day is Monday itself: the answer
	// is next Monday's opening, not "no upcoming hours".
	next, ok := NextOpenTime(w, time.Monday, 23*60)
	require.True(t, ok)
	assert.Equal(t, "09:00", next)
}

func TestNextOpenTime_EmptyWeek(t *testing.T) {
	_, ok := NextOpenTime(Week{}, time.Monday, 12*60)
	assert.False(t, ok)
}

func TestNextCloseTime(t *testing.T) {
	slots := []TimeSlot{
		{Open: "09:00", Close: "13:00"},
		{Open: "14:00", Close: "22:00"},
	}

	next, ok := NextCloseTime(slots, 10*60)
	require.True(t, ok)
	assert.Equal(t, "13:00", next)

	next, ok = NextCloseTime(slots, 13*60+30)
	require.True(t, ok)
	assert.Equal(t, "22:00", next)

	_, ok = NextCloseTime(slots, 22*60)
	assert.False(t, ok, "day is over at close time")
}
