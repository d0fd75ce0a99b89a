package dto

import (
	"time"

	"hadirku_backend/internals/features/attendance/engine"
)

type ReportQuery struct {
	From      engine.Date
	To        engine.Date
	PersonIDs []string
	ClassName string
}

// StaffDay: satu baris rekap tendik per tanggal.
type StaffDay struct {
	PersonName string `json:"person_name"`
	engine.DailyStatus
}

type StaffTotal struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	OnTime     int    `json:"on_time"`
	Late       int    `json:"late"`
	Excused    int    `json:"excused"`
	Absent     int    `json:"absent"`
	Overtime   int    `json:"overtime"`
	LateMinute int    `json:"late_minutes"`
	TotalFine  int64  `json:"total_fine"`
}

type StaffRecap struct {
	From   engine.Date  `json:"from"`
	To     engine.Date  `json:"to"`
	Days   []StaffDay   `json:"days"`
	Totals []StaffTotal `json:"totals"`
}

type SummaryRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

type SummaryResponse struct {
	From        engine.Date           `json:"from"`
	To          engine.Date           `json:"to"`
	Counts      map[engine.Status]int `json:"counts"`
	Text        string                `json:"text"`
	GeneratedAt time.Time             `json:"generated_at"`
}
