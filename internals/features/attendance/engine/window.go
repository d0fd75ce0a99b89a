package engine

import (
	"fmt"
	"time"
)

// Jendela absen hari kerja (Senin–Jumat).
var (
	CheckInOpen     = NewClock(5, 0)
	CheckInDeadline = NewClock(7, 15)
	CheckInCutoff   = NewClock(15, 20)

	CheckOutMonThu = TimeRange{Start: NewClock(15, 0), End: NewClock(15, 20)}
	CheckOutFriday = TimeRange{Start: NewClock(11, 30), End: NewClock(15, 20)}
)

type CheckInResult struct {
	Allowed         bool   `json:"allowed"`
	OnTime          bool   `json:"on_time"`
	Overtime        bool   `json:"overtime"`
	LatenessMinutes int    `json:"lateness_minutes"`
	Message         string `json:"message,omitempty"`
}

type CheckOutResult struct {
	Allowed  bool      `json:"allowed"`
	Overtime bool      `json:"overtime"`
	Window   TimeRange `json:"window"`
	NextOpen time.Time `json:"next_open,omitempty"`
	Message  string    `json:"message,omitempty"`
}

type LessonResult struct {
	Valid           bool      `json:"valid"`
	OnTime          bool      `json:"on_time"`
	LatenessMinutes int       `json:"lateness_minutes"`
	Window          TimeRange `json:"window"`
}

// lateAgainst: terlambat jika ts lewat dari ref (presisi penuh),
// menit keterlambatan dibulatkan ke bawah.
func lateAgainst(ts time.Time, ref Clock) (bool, int) {
	refAt := ref.On(DateOf(ts), ts.Location())
	if !ts.After(refAt) {
		return false, 0
	}
	return true, int(ts.Sub(refAt) / time.Minute)
}

// ClassifyCheckIn untuk scan harian (tendik). Sabtu/Minggu = lembur, selalu boleh.
func ClassifyCheckIn(ts time.Time) CheckInResult {
	if IsWeekend(ts.Weekday()) {
		return CheckInResult{Allowed: true, OnTime: true, Overtime: true, Message: "Absen lembur"}
	}

	c := ClockOf(ts)
	if c < CheckInOpen {
		return CheckInResult{Message: fmt.Sprintf("Absen masuk belum dibuka. Dibuka pukul %s", CheckInOpen)}
	}
	if c > CheckInCutoff {
		return CheckInResult{Message: fmt.Sprintf("Absen masuk sudah ditutup pukul %s", CheckInCutoff)}
	}

	late, minutes := lateAgainst(ts, CheckInDeadline)
	if late {
		return CheckInResult{
			Allowed:         true,
			LatenessMinutes: minutes,
			Message:         fmt.Sprintf("Terlambat %d menit", minutes),
		}
	}
	return CheckInResult{Allowed: true, OnTime: true}
}

// CheckOutWindow: false untuk Sabtu/Minggu (tidak ada batas).
func CheckOutWindow(wd time.Weekday) (TimeRange, bool) {
	switch wd {
	case time.Saturday, time.Sunday:
		return TimeRange{}, false
	case time.Friday:
		return CheckOutFriday, true
	default:
		return CheckOutMonThu, true
	}
}

// ClassifyCheckOut: jendela inklusif di kedua ujung pada granularitas menit.
func ClassifyCheckOut(ts time.Time) CheckOutResult {
	w, bounded := CheckOutWindow(ts.Weekday())
	if !bounded {
		return CheckOutResult{Allowed: true, Overtime: true, Message: "Absen pulang lembur"}
	}

	c := ClockOf(ts)
	if c >= w.Start && c <= w.End {
		return CheckOutResult{Allowed: true, Window: w}
	}

	day := DateOf(ts)
	if c < w.Start {
		return CheckOutResult{
			Window:   w,
			NextOpen: w.Start.On(day, ts.Location()),
			Message:  fmt.Sprintf("Absen pulang belum dibuka. Dibuka pukul %s", w.Start),
		}
	}

	next := day.AddDays(1)
	nw, nb := CheckOutWindow(next.Weekday())
	if !nb {
		return CheckOutResult{
			Window:   w,
			NextOpen: next.In(ts.Location()),
			Message:  fmt.Sprintf("Absen pulang sudah ditutup. Dibuka kembali hari %s (lembur)", HariName(next.Weekday())),
		}
	}
	return CheckOutResult{
		Window:   w,
		NextOpen: nw.Start.On(next, ts.Location()),
		Message:  fmt.Sprintf("Absen pulang sudah ditutup. Dibuka kembali hari %s pukul %s", HariName(next.Weekday()), nw.Start),
	}
}

// ClassifyLesson: keterlambatan relatif terhadap jam mulai pelajaran/eskul itu sendiri.
// Rentang jam yang tidak bisa dibaca → Valid=false (tanpa hitungan terlambat).
func ClassifyLesson(ts time.Time, timeRange string) LessonResult {
	r, err := ParseTimeRange(timeRange)
	if err != nil {
		return LessonResult{}
	}
	late, minutes := lateAgainst(ts, r.Start)
	return LessonResult{
		Valid:           true,
		OnTime:          !late,
		LatenessMinutes: minutes,
		Window:          r,
	}
}
