package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/helpers/dbtime"
)

// ScanEventModel: satu kali scan QR yang diterima.
// Scan harian (tanpa jadwal) unik per (user, tanggal, jenis);
// scan pelajaran unik per (user, tanggal, jadwal, jenis).
type ScanEventModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_scan_events_daily,priority:1,where:schedule_entry_id IS NULL;uniqueIndex:uq_scan_events_lesson,priority:1,where:schedule_entry_id IS NOT NULL" json:"user_id"`
	ScanDate        datatypes.Date `gorm:"type:date;not null;index;uniqueIndex:uq_scan_events_daily,priority:2;uniqueIndex:uq_scan_events_lesson,priority:2" json:"scan_date"`
	ScheduleEntryID *uuid.UUID     `gorm:"type:uuid;uniqueIndex:uq_scan_events_lesson,priority:3" json:"schedule_entry_id,omitempty"`
	Kind            string         `gorm:"type:varchar(16);not null;check:kind IN ('check_in','check_out');uniqueIndex:uq_scan_events_daily,priority:3;uniqueIndex:uq_scan_events_lesson,priority:4" json:"kind"`
	ScannedAt       time.Time      `gorm:"type:timestamptz;not null" json:"scanned_at"`
	Latitude        *float64       `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude       *float64       `gorm:"type:double precision" json:"longitude,omitempty"`
	DistanceMeters  float64        `gorm:"type:double precision;not null;default:0" json:"distance_meters"`
	DeviceID        string         `gorm:"type:varchar(128);not null" json:"-"`
	IsLate          bool           `gorm:"not null;default:false" json:"is_late"`
	LatenessMinutes int            `gorm:"not null;default:0" json:"lateness_minutes"`
	Overtime        bool           `gorm:"not null;default:false" json:"overtime"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (ScanEventModel) TableName() string {
	return "scan_events"
}

func (m ScanEventModel) ToEngine() engine.ScanEvent {
	e := engine.ScanEvent{
		PersonID:  m.UserID.String(),
		Timestamp: dbtime.ToSchoolTime(m.ScannedAt),
		Kind:      engine.ScanKind(m.Kind),
		Date:      dbtime.FromColumn(m.ScanDate),
	}
	if m.ScheduleEntryID != nil {
		e.ScheduleEntryID = m.ScheduleEntryID.String()
	}
	return e
}

func ToEngineScans(rows []ScanEventModel) []engine.ScanEvent {
	out := make([]engine.ScanEvent, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToEngine())
	}
	return out
}
