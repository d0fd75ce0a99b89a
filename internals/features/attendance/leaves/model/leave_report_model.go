package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/helpers/dbtime"
)

// LeaveReportModel: laporan sakit/izin/dinas luar, maksimal satu per orang per hari.
type LeaveReportModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_leave_reports_user_date,priority:1" json:"user_id"`
	LeaveDate       datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_leave_reports_user_date,priority:2;index" json:"leave_date"`
	Reason          string         `gorm:"type:varchar(20);not null;check:reason IN ('sakit','izin','dinas_luar')" json:"reason"`
	Note            string         `gorm:"type:text" json:"note"`
	AffectedPeriods pq.Int64Array  `gorm:"type:int[]" json:"affected_periods"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (LeaveReportModel) TableName() string {
	return "leave_reports"
}

func (m LeaveReportModel) ToEngine() engine.LeaveReport {
	periods := make([]int, 0, len(m.AffectedPeriods))
	for _, p := range m.AffectedPeriods {
		periods = append(periods, int(p))
	}
	return engine.LeaveReport{
		PersonID:        m.UserID.String(),
		Date:            dbtime.FromColumn(m.LeaveDate),
		Reason:          engine.ReasonCode(m.Reason),
		Note:            m.Note,
		AffectedPeriods: periods,
	}
}

func ToEngineLeaves(rows []LeaveReportModel) []engine.LeaveReport {
	out := make([]engine.LeaveReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEngine())
	}
	return out
}
