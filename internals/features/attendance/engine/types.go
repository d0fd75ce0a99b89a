// Package engine berisi aturan klasifikasi presensi: geofence, jendela waktu,
// status harian, dan join jadwal untuk laporan komprehensif.
// Semua fungsi di sini murni (tanpa DB / network) dan deterministik.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/* =========================
   Enum
========================= */

type ScanKind string

const (
	ScanCheckIn  ScanKind = "check_in"
	ScanCheckOut ScanKind = "check_out"
)

func (k ScanKind) Valid() bool { return k == ScanCheckIn || k == ScanCheckOut }

type ReasonCode string

const (
	ReasonSick        ReasonCode = "sakit"
	ReasonPermission  ReasonCode = "izin"
	ReasonOutsideDuty ReasonCode = "dinas_luar"
)

func (r ReasonCode) Valid() bool {
	switch r {
	case ReasonSick, ReasonPermission, ReasonOutsideDuty:
		return true
	}
	return false
}

func (r ReasonCode) Label() string {
	switch r {
	case ReasonSick:
		return "Sakit"
	case ReasonPermission:
		return "Izin"
	case ReasonOutsideDuty:
		return "Dinas Luar"
	}
	return string(r)
}

type Status string

const (
	StatusOnTime     Status = "on_time"
	StatusLate       Status = "late"
	StatusCheckedOut Status = "checked_out"
	StatusExcused    Status = "excused"
	StatusAbsent     Status = "absent"

	// hadir tapi jam pelajaran tidak bisa dibaca → tanpa hitungan terlambat
	StatusPresent Status = "present"
	// hari ini, jendela absen belum lewat
	StatusPending Status = "pending"
	// Sabtu/Minggu tanpa scan
	StatusOff Status = "off"
)

func (s Status) Label() string {
	switch s {
	case StatusOnTime:
		return "Tepat Waktu"
	case StatusLate:
		return "Terlambat"
	case StatusCheckedOut:
		return "Pulang"
	case StatusExcused:
		return "Izin"
	case StatusAbsent:
		return "Alpa"
	case StatusPresent:
		return "Hadir"
	case StatusPending:
		return "Belum Absen"
	case StatusOff:
		return "Libur"
	}
	return string(s)
}

/* =========================
   Date (tanggal kalender, tanpa jam)
========================= */

const DateLayout = "2006-01-02"

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("tanggal tidak valid (format YYYY-MM-DD): %q", s)
	}
	return DateOf(t), nil
}

// In: jam 00:00 pada tanggal ini di zona loc.
func (d Date) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday { return d.In(time.UTC).Weekday() }

func (d Date) AddDays(n int) Date { return DateOf(d.In(time.UTC).AddDate(0, 0, n)) }

func (d Date) Before(o Date) bool { return d.In(time.UTC).Before(o.In(time.UTC)) }

func (d Date) After(o Date) bool { return o.Before(d) }

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string { return d.In(time.UTC).Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) { return []byte(`"` + d.String() + `"`), nil }

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func IsWeekend(wd time.Weekday) bool { return wd == time.Saturday || wd == time.Sunday }

/* =========================
   Input records
========================= */

type Person struct {
	ID           string
	DisplayName  string
	ScheduleCode string
}

type MasterScheduleEntry struct {
	ID                string
	ScheduleCode      string
	PersonDisplayName string
	Subject           string
	DayOfWeek         time.Weekday
	TimeRange         string // "HH:MM - HH:MM"
	ClassName         string
	PeriodIndex       int
}

// ScanEvent: ScheduleEntryID kosong = scan harian tendik (tanpa jadwal).
type ScanEvent struct {
	PersonID        string
	Timestamp       time.Time
	Kind            ScanKind
	ScheduleEntryID string
	Date            Date
}

// CalendarDate: pakai Date eksplisit, fallback ke tanggal dari Timestamp.
func (e ScanEvent) CalendarDate() Date {
	if !e.Date.IsZero() {
		return e.Date
	}
	return DateOf(e.Timestamp)
}

type LeaveReport struct {
	PersonID        string
	Date            Date
	Reason          ReasonCode
	Note            string
	AffectedPeriods []int
}

// PeriodsNote: keterangan jam ke yang dilaporkan, mis. "jam ke-1, 3". Hanya informasi;
// izin tetap berlaku untuk seluruh hari.
func (l LeaveReport) PeriodsNote() string {
	if len(l.AffectedPeriods) == 0 {
		return ""
	}
	parts := make([]string, 0, len(l.AffectedPeriods))
	for _, p := range l.AffectedPeriods {
		parts = append(parts, strconv.Itoa(p))
	}
	return "jam ke-" + strings.Join(parts, ", ")
}
