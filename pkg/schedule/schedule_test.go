package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true},
		{"09-00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.minutes, got, "input %q", tc.in)
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "MONDAY", DayKey(time.Monday))
	assert.Equal(t, "SUNDAY", DayKey(time.Sunday))
}

func TestWeekValidate_OK(t *testing.T) {
	w := Week{
		"MONDAY": {{Open: "09:00", Close: "13:00"}, {Open: "14:00", Close: "22:00"}},
		"FRIDAY": {{Open: "10:00", Close: "23:00"}},
	}
	assert.NoError(t, w.Validate())
}

func TestWeekValidate_EmptyDayMeansClosed(t *testing.T) {
	w := Week{"TUESDAY": {}}
	assert.NoError(t, w.Validate())
}

func TestWeekValidate_UnknownDay(t *testing.T) {
	w := Week{"FUNDAY": {{Open: "09:00", Close: "22:00"}}}
	err := w.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDay)

	var slotErr *SlotError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, "FUNDAY", slotErr.Day)
}

func TestWeekValidate_CloseNotAfterOpen(t *testing.T) {
	cases := []TimeSlot{
		{Open: "22:00", Close: "09:00"},
		{Open: "12:00", Close: "12:00"},
	}
	for _, slot := range cases {
		w := Week{"MONDAY": {slot}}
		err := w.Validate()
		require.Error(t, err, "slot %v", slot)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	}
}

func TestWeekValidate_BadClockFormat(t *testing.T) {
	w := Week{"MONDAY": {{Open: "9am", Close: "22:00"}}}
	err := w.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestWeekValidate_OverlappingSlots(t *testing.T) {
	w := Week{
		"SATURDAY": {
			{Open: "09:00", Close: "14:00"},
			{Open: "13:00", Close: "22:00"},
		},
	}
	err := w.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverlappingSlots)

	var slotErr *SlotError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, "SATURDAY", slotErr.Day)
}

func TestWeekValidate_TouchingSlotsDoNotOverlap(t *testing.T) {
	w := Week{
		"MONDAY": {
			{Open: "09:00", Close: "13:00"},
			{Open: "13:00", Close: "22:00"},
		},
	}
	assert.NoError(t, w.Validate())
}

func TestWeekValidate_RejectsWholeWeekOnOneBadDay(t *testing.T) {
	w := Week{
		"MONDAY":  {{Open: "09:00", Close: "22:00"}},
		"TUESDAY": {{Open: "22:00", Close: "09:00"}},
	}
	err := w.Validate()
	require.Error(t, err)

	var slotErr *SlotError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, "TUESDAY", slotErr.Day)
}

func TestDefaultWeek(t *testing.T) {
	w := DefaultWeek()
	require.Len(t, w, 7)
	require.NoError(t, w.Validate())
	for day, slots := range w {
		require.Len(t, slots, 1, "day %s", day)
		assert.Equal(t, "09:00", slots[0].Open)
		assert.Equal(t, "22:00", slots[0].Close)
	}
}
