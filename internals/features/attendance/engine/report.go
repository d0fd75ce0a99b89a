package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Filter struct {
	PersonIDs []string
	ClassName string
}

type ReportInput struct {
	From     Date
	To       Date
	Schedule []MasterScheduleEntry
	People   []Person
	Scans    []ScanEvent
	Leaves   []LeaveReport
	Filter   Filter

	// Opsional: kalau diisi, pelajaran yang belum dimulai per Now → pending, bukan alpa.
	Now time.Time
}

type ReportRow struct {
	Date                Date       `json:"date"`
	PersonID            string     `json:"person_id"`
	PersonDisplayName   string     `json:"person_display_name"`
	ScheduleCode        string     `json:"schedule_code"`
	ScheduleEntryID     string     `json:"schedule_entry_id"`
	ClassName           string     `json:"class_name"`
	Subject             string     `json:"subject"`
	PeriodIndex         int        `json:"period_index"`
	TimeRange           string     `json:"time_range"`
	Status              Status     `json:"status"`
	Reason              ReasonCode `json:"reason,omitempty"`
	ScanTime            string     `json:"scan_time"`
	LatenessMinutes     int        `json:"lateness_minutes"`
	LatenessDescription string     `json:"lateness_description"`
	Note                string     `json:"note"`
}

// StatusLabel: label tampilan, termasuk alasan izin.
func (r ReportRow) StatusLabel() string {
	if r.Status == StatusExcused && r.Reason != "" {
		return r.Reason.Label()
	}
	return r.Status.Label()
}

type personDate struct {
	personID string
	date     Date
}

type entryDate struct {
	entryID string
	date    Date
}

const dash = "-"

// BuildComprehensiveReport: satu baris per (jadwal, tanggal) yang harinya cocok.
// Jadwal yang kodenya tidak terhubung ke siapa pun dilewati.
func BuildComprehensiveReport(in ReportInput) []ReportRow {
	if in.To.Before(in.From) {
		return []ReportRow{}
	}

	byCode := make(map[string]Person, len(in.People))
	for _, p := range in.People {
		if code := strings.TrimSpace(p.ScheduleCode); code != "" {
			byCode[code] = p
		}
	}

	var onlyPeople map[string]struct{}
	if len(in.Filter.PersonIDs) > 0 {
		onlyPeople = make(map[string]struct{}, len(in.Filter.PersonIDs))
		for _, id := range in.Filter.PersonIDs {
			onlyPeople[id] = struct{}{}
		}
	}
	classFilter := strings.TrimSpace(in.Filter.ClassName)

	leaves := make(map[personDate]LeaveReport, len(in.Leaves))
	for _, l := range in.Leaves {
		leaves[personDate{l.PersonID, l.Date}] = l
	}

	scans := make(map[entryDate]ScanEvent, len(in.Scans))
	for _, e := range in.Scans {
		if e.ScheduleEntryID == "" || e.Kind != ScanCheckIn {
			continue
		}
		k := entryDate{e.ScheduleEntryID, e.CalendarDate()}
		if prev, ok := scans[k]; ok && !e.Timestamp.Before(prev.Timestamp) {
			continue
		}
		scans[k] = e
	}

	byDay := make(map[time.Weekday][]MasterScheduleEntry, 7)
	for _, s := range in.Schedule {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}

	loc := time.Local
	if !in.Now.IsZero() {
		loc = in.Now.Location()
	}

	rows := make([]ReportRow, 0)
	for d := in.From; !d.After(in.To); d = d.AddDays(1) {
		for _, s := range byDay[d.Weekday()] {
			p, ok := byCode[strings.TrimSpace(s.ScheduleCode)]
			if !ok {
				continue
			}
			if onlyPeople != nil {
				if _, ok := onlyPeople[p.ID]; !ok {
					continue
				}
			}
			if classFilter != "" && !strings.EqualFold(strings.TrimSpace(s.ClassName), classFilter) {
				continue
			}

			row := ReportRow{
				Date:                d,
				PersonID:            p.ID,
				PersonDisplayName:   s.PersonDisplayName,
				ScheduleCode:        s.ScheduleCode,
				ScheduleEntryID:     s.ID,
				ClassName:           s.ClassName,
				Subject:             s.Subject,
				PeriodIndex:         s.PeriodIndex,
				TimeRange:           s.TimeRange,
				ScanTime:            dash,
				LatenessDescription: dash,
				Note:                dash,
			}
			if row.PersonDisplayName == "" {
				row.PersonDisplayName = p.DisplayName
			}

			// izin menimpa semua baris hari itu, ada scan atau tidak
			if l, ok := leaves[personDate{p.ID, d}]; ok {
				row.Status = StatusExcused
				row.Reason = l.Reason
				if note := leaveNote(l); note != "" {
					row.Note = note
				}
				rows = append(rows, row)
				continue
			}

			if e, ok := scans[entryDate{s.ID, d}]; ok {
				row.ScanTime = e.Timestamp.Format("15:04")
				res := ClassifyLesson(e.Timestamp, s.TimeRange)
				switch {
				case !res.Valid:
					row.Status = StatusPresent
					row.Note = "jam pelajaran tidak valid"
				case res.OnTime:
					row.Status = StatusOnTime
				default:
					row.Status = StatusLate
					row.LatenessMinutes = res.LatenessMinutes
					row.LatenessDescription = fmt.Sprintf("Terlambat %d menit", res.LatenessMinutes)
				}
				rows = append(rows, row)
				continue
			}

			row.Status = StatusAbsent
			if !in.Now.IsZero() {
				if r, err := ParseTimeRange(s.TimeRange); err == nil && r.Start.On(d, loc).After(in.Now) {
					row.Status = StatusPending
				}
			}
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		if a.PeriodIndex != b.PeriodIndex {
			return a.PeriodIndex < b.PeriodIndex
		}
		if a.PersonDisplayName != b.PersonDisplayName {
			return a.PersonDisplayName < b.PersonDisplayName
		}
		if a.ClassName != b.ClassName {
			return a.ClassName < b.ClassName
		}
		return a.Subject < b.Subject
	})
	return rows
}

// CountByStatus: ringkasan jumlah baris per status (dipakai ringkasan AI & header export).
func CountByStatus(rows []ReportRow) map[Status]int {
	out := make(map[Status]int)
	for _, r := range rows {
		out[r.Status]++
	}
	return out
}

func leaveNote(l LeaveReport) string {
	note := strings.TrimSpace(l.Note)
	periods := l.PeriodsNote()
	switch {
	case note == "":
		return periods
	case periods == "":
		return note
	default:
		return note + " (" + periods + ")"
	}
}
