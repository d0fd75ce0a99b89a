package dto

import (
	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/schedules/model"
)

type ScheduleResponse struct {
	ID                string `json:"id"`
	ScheduleCode      string `json:"schedule_code"`
	PersonDisplayName string `json:"person_display_name"`
	Subject           string `json:"subject"`
	DayOfWeek         int    `json:"day_of_week"`
	DayName           string `json:"day_name"`
	TimeRange         string `json:"time_range"`
	ClassName         string `json:"class_name"`
	PeriodIndex       int    `json:"period_index"`
}

func FromModel(m model.MasterScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ID:                m.ID.String(),
		ScheduleCode:      m.ScheduleCode,
		PersonDisplayName: m.PersonDisplayName,
		Subject:           m.Subject,
		DayOfWeek:         m.DayOfWeek,
		DayName:           engine.HariName(m.Weekday()),
		TimeRange:         m.TimeRange,
		ClassName:         m.ClassName,
		PeriodIndex:       m.PeriodIndex,
	}
}

func FromModels(rows []model.MasterScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// CodeOption: pilihan kode jadwal untuk dropdown profil.
type CodeOption struct {
	ScheduleCode      string `json:"schedule_code"`
	PersonDisplayName string `json:"person_display_name"`
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}
