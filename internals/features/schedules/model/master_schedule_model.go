package model

import (
	"time"

	"github.com/google/uuid"

	"hadirku_backend/internals/features/attendance/engine"
)

// MasterScheduleModel: satu baris jadwal pelajaran/eskul hasil impor Excel.
type MasterScheduleModel struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScheduleCode      string    `gorm:"type:varchar(30);not null;index:idx_master_schedules_code_day,priority:1" json:"schedule_code"`
	PersonDisplayName string    `gorm:"type:varchar(150);not null" json:"person_display_name"`
	Subject           string    `gorm:"type:varchar(150);not null" json:"subject"`
	DayOfWeek         int       `gorm:"type:smallint;not null;check:day_of_week BETWEEN 0 AND 6;index:idx_master_schedules_code_day,priority:2" json:"day_of_week"`
	TimeRange         string    `gorm:"type:varchar(20);not null" json:"time_range"`
	ClassName         string    `gorm:"type:varchar(50);not null;index" json:"class_name"`
	PeriodIndex       int       `gorm:"type:smallint;not null;default:0" json:"period_index"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MasterScheduleModel) TableName() string {
	return "master_schedules"
}

func (m MasterScheduleModel) Weekday() time.Weekday { return time.Weekday(m.DayOfWeek) }

func (m MasterScheduleModel) ToEngine() engine.MasterScheduleEntry {
	return engine.MasterScheduleEntry{
		ID:                m.ID.String(),
		ScheduleCode:      m.ScheduleCode,
		PersonDisplayName: m.PersonDisplayName,
		Subject:           m.Subject,
		DayOfWeek:         m.Weekday(),
		TimeRange:         m.TimeRange,
		ClassName:         m.ClassName,
		PeriodIndex:       m.PeriodIndex,
	}
}

func ToEngineEntries(rows []MasterScheduleModel) []engine.MasterScheduleEntry {
	out := make([]engine.MasterScheduleEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEngine())
	}
	return out
}
