package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock: jam dinding dalam menit sejak 00:00.
type Clock int

func NewClock(hour, minute int) Clock { return Clock(hour*60 + minute) }

// ClockOf memotong detik (granularitas menit).
func ClockOf(t time.Time) Clock { return NewClock(t.Hour(), t.Minute()) }

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute()) }

// On: instant jam ini pada tanggal d di zona loc.
func (c Clock) On(d Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, c.Hour(), c.Minute(), 0, 0, loc)
}

var clockRe = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})$`)

// ParseClock menerima "HH:MM" atau "HH.MM".
func ParseClock(s string) (Clock, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("format jam tidak valid: %q", s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h > 23 || mi > 59 {
		return 0, fmt.Errorf("jam di luar rentang: %q", s)
	}
	return NewClock(h, mi), nil
}

type TimeRange struct {
	Start Clock `json:"start"`
	End   Clock `json:"end"`
}

var ErrMalformedTimeRange = errors.New("format rentang jam harus HH:MM - HH:MM")

// ParseTimeRange membaca "HH:MM - HH:MM" (spasi di sekitar "-" opsional).
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, ErrMalformedTimeRange
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return TimeRange{}, ErrMalformedTimeRange
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return TimeRange{}, ErrMalformedTimeRange
	}
	if end <= start {
		return TimeRange{}, ErrMalformedTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Contains: [Start, End)
func (r TimeRange) Contains(c Clock) bool { return c >= r.Start && c < r.End }

func (r TimeRange) String() string { return r.Start.String() + " - " + r.End.String() }

func (r TimeRange) MarshalJSON() ([]byte, error) { return []byte(`"` + r.String() + `"`), nil }

/* =========================
   Nama hari
========================= */

var hariNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

func HariName(wd time.Weekday) string { return hariNames[wd] }

var weekdayAliases = map[string]time.Weekday{
	"minggu": time.Sunday, "ahad": time.Sunday, "sunday": time.Sunday,
	"senin": time.Monday, "monday": time.Monday,
	"selasa": time.Tuesday, "tuesday": time.Tuesday,
	"rabu": time.Wednesday, "wednesday": time.Wednesday,
	"kamis": time.Thursday, "thursday": time.Thursday,
	"jumat": time.Friday, "jum'at": time.Friday, "friday": time.Friday,
	"sabtu": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday menerima nama hari Indonesia atau Inggris (case-insensitive).
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}
