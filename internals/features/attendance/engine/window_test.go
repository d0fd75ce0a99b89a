package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 = Senin, 2024-01-05 = Jumat, 2024-01-06 = Sabtu.
func at(day, hour, minute, second int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, second, 0, time.UTC)
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("08:00 - 08:40")
	require.NoError(t, err)
	assert.Equal(t, NewClock(8, 0), r.Start)
	assert.Equal(t, NewClock(8, 40), r.End)
	assert.Equal(t, "08:00 - 08:40", r.String())

	r, err = ParseTimeRange("7.00-7.40")
	require.NoError(t, err)
	assert.Equal(t, NewClock(7, 0), r.Start)

	for _, bad := range []string{"", "08:00", "08:00 - ", "25:00 - 26:00", "09:00 - 08:00", "pagi - siang", "08:00 - 08:40 - 09:00"} {
		_, err := ParseTimeRange(bad)
		assert.ErrorIs(t, err, ErrMalformedTimeRange, bad)
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"Senin": time.Monday, "JUMAT": time.Friday, "jum'at": time.Friday,
		"Sabtu": time.Saturday, "sunday": time.Sunday, " Rabu ": time.Wednesday,
	}
	for in, want := range cases {
		got, ok := ParseWeekday(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseWeekday("Libur")
	assert.False(t, ok)
}

func TestClassifyCheckIn_Deadline(t *testing.T) {
	onTime := ClassifyCheckIn(at(1, 7, 15, 0))
	assert.True(t, onTime.Allowed)
	assert.True(t, onTime.OnTime)
	assert.Equal(t, 0, onTime.LatenessMinutes)

	oneSecond := ClassifyCheckIn(at(1, 7, 15, 1))
	assert.True(t, oneSecond.Allowed)
	assert.False(t, oneSecond.OnTime)
	assert.Equal(t, 0, oneSecond.LatenessMinutes)

	oneMinute := ClassifyCheckIn(at(1, 7, 16, 0))
	assert.False(t, oneMinute.OnTime)
	assert.Equal(t, 1, oneMinute.LatenessMinutes)

	early := ClassifyCheckIn(at(1, 6, 0, 0))
	assert.True(t, early.OnTime)
}

func TestClassifyCheckIn_OutsideWindow(t *testing.T) {
	tooEarly := ClassifyCheckIn(at(2, 4, 59, 0))
	assert.False(t, tooEarly.Allowed)
	assert.Contains(t, tooEarly.Message, "05:00")

	atCutoff := ClassifyCheckIn(at(2, 15, 20, 0))
	assert.True(t, atCutoff.Allowed)
	assert.Equal(t, 485, atCutoff.LatenessMinutes)

	tooLate := ClassifyCheckIn(at(2, 15, 21, 0))
	assert.False(t, tooLate.Allowed)
}

func TestClassifyCheckIn_WeekendIsOvertime(t *testing.T) {
	r := ClassifyCheckIn(at(6, 10, 0, 0))
	assert.True(t, r.Allowed)
	assert.True(t, r.OnTime)
	assert.True(t, r.Overtime)
	assert.Equal(t, 0, r.LatenessMinutes)

	r = ClassifyCheckIn(at(7, 3, 0, 0))
	assert.True(t, r.Allowed)
}

func TestClassifyCheckOut_MonThu(t *testing.T) {
	assert.True(t, ClassifyCheckOut(at(1, 15, 0, 0)).Allowed)
	assert.True(t, ClassifyCheckOut(at(1, 15, 20, 59)).Allowed)

	before := ClassifyCheckOut(at(1, 14, 59, 0))
	assert.False(t, before.Allowed)
	assert.Equal(t, at(1, 15, 0, 0), before.NextOpen)
	assert.Contains(t, before.Message, "15:00")

	after := ClassifyCheckOut(at(1, 15, 21, 0))
	assert.False(t, after.Allowed)
	assert.Equal(t, at(2, 15, 0, 0), after.NextOpen)
	assert.Contains(t, after.Message, "Selasa")
}

func TestClassifyCheckOut_Friday(t *testing.T) {
	assert.True(t, ClassifyCheckOut(at(5, 11, 30, 0)).Allowed)
	assert.False(t, ClassifyCheckOut(at(5, 11, 29, 0)).Allowed)

	thursdayLate := ClassifyCheckOut(at(4, 16, 0, 0))
	assert.Equal(t, at(5, 11, 30, 0), thursdayLate.NextOpen)

	fridayLate := ClassifyCheckOut(at(5, 15, 30, 0))
	assert.False(t, fridayLate.Allowed)
	assert.Equal(t, at(6, 0, 0, 0), fridayLate.NextOpen)
	assert.Contains(t, fridayLate.Message, "Sabtu")
}

func TestClassifyCheckOut_Weekend(t *testing.T) {
	r := ClassifyCheckOut(at(7, 22, 0, 0))
	assert.True(t, r.Allowed)
	assert.True(t, r.Overtime)
}

func TestClassifyLesson(t *testing.T) {
	late := ClassifyLesson(at(1, 8, 5, 0), "08:00 - 08:40")
	require.True(t, late.Valid)
	assert.False(t, late.OnTime)
	assert.Equal(t, 5, late.LatenessMinutes)

	exact := ClassifyLesson(at(1, 8, 0, 0), "08:00 - 08:40")
	assert.True(t, exact.OnTime)

	early := ClassifyLesson(at(1, 7, 50, 0), "08:00 - 08:40")
	assert.True(t, early.OnTime)

	bad := ClassifyLesson(at(1, 8, 5, 0), "jam ke-1")
	assert.False(t, bad.Valid)
}
