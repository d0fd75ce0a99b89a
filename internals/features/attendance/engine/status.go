package engine

import (
	"time"
)

const (
	NoteMissedCheckout = "tidak absen pulang"
	NoteMissedCheckIn  = "tidak absen masuk"
	NoteOvertime       = "lembur"
)

type DailyStatus struct {
	PersonID        string     `json:"person_id"`
	Date            Date       `json:"date"`
	Status          Status     `json:"status"`
	Reason          ReasonCode `json:"reason,omitempty"`
	CheckInAt       *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt      *time.Time `json:"check_out_at,omitempty"`
	Overtime        bool       `json:"overtime"`
	Late            bool       `json:"late"` // bisa true walau LatenessMinutes 0 (telat < 1 menit)
	LatenessMinutes int        `json:"lateness_minutes"`
	FineAmount      int64      `json:"fine_amount"`
	Note            string     `json:"note,omitempty"`
}

type DailyInput struct {
	PersonID        string
	Date            Date
	Scans           []ScanEvent
	Leave           *LeaveReport
	FineRatePerLate int64
	// Now dipakai untuk "sudah lewat?"; harus di zona sekolah.
	Now time.Time
}

// ResolveDailyStatus menggabungkan scan harian & laporan izin satu orang pada satu tanggal.
// Urutan: izin → pulang → masuk saja → alpa.
// Hanya scan tanpa jadwal (ScheduleEntryID kosong) yang dihitung.
// Sabtu/Minggu tanpa scan → off (hari libur), bukan alpa.
func ResolveDailyStatus(in DailyInput) DailyStatus {
	out := DailyStatus{PersonID: in.PersonID, Date: in.Date}

	if l := in.Leave; l != nil && l.PersonID == in.PersonID && l.Date == in.Date {
		out.Status = StatusExcused
		out.Reason = l.Reason
		out.Note = l.Note
		return out
	}

	var checkIn, checkOut *ScanEvent
	for i := range in.Scans {
		e := &in.Scans[i]
		if e.PersonID != in.PersonID || e.ScheduleEntryID != "" || e.CalendarDate() != in.Date {
			continue
		}
		switch e.Kind {
		case ScanCheckIn:
			if checkIn == nil || e.Timestamp.Before(checkIn.Timestamp) {
				checkIn = e
			}
		case ScanCheckOut:
			if checkOut == nil || e.Timestamp.After(checkOut.Timestamp) {
				checkOut = e
			}
		}
	}

	weekday := in.Date.Weekday()

	if checkIn != nil {
		t := checkIn.Timestamp
		out.CheckInAt = &t

		cls := ClassifyCheckIn(checkIn.Timestamp)
		out.Overtime = cls.Overtime
		if !cls.OnTime {
			out.Late = true
			out.LatenessMinutes = cls.LatenessMinutes
			if !IsWeekend(weekday) {
				out.FineAmount = in.FineRatePerLate
			}
		}
		if cls.Overtime {
			out.Note = NoteOvertime
		}

		if checkOut != nil {
			ct := checkOut.Timestamp
			out.CheckOutAt = &ct
			out.Status = StatusCheckedOut
			return out
		}

		if cls.OnTime {
			out.Status = StatusOnTime
		} else {
			out.Status = StatusLate
		}
		if w, bounded := CheckOutWindow(weekday); bounded {
			closesAt := w.End.On(in.Date, checkIn.Timestamp.Location()).Add(time.Minute)
			if !in.Now.Before(closesAt) {
				out.Note = NoteMissedCheckout
			}
		}
		return out
	}

	if checkOut != nil {
		ct := checkOut.Timestamp
		out.CheckOutAt = &ct
		out.Status = StatusCheckedOut
		out.Note = NoteMissedCheckIn
		return out
	}

	if IsWeekend(weekday) {
		out.Status = StatusOff
		return out
	}

	today := DateOf(in.Now)
	switch {
	case in.Date.Before(today):
		out.Status = StatusAbsent
	case in.Date == today && ClockOf(in.Now) > CheckInCutoff:
		out.Status = StatusAbsent
	default:
		out.Status = StatusPending
	}
	return out
}
