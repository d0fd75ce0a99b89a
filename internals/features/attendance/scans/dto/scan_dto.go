package dto

import (
	"time"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/scans/model"
	"hadirku_backend/internals/helpers/dbtime"
)

// ScanRequest: token hasil decode QR + posisi GPS (opsional, tapi wajib lolos geofence).
type ScanRequest struct {
	Token           string   `json:"token" validate:"required,max=512"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,longitude"`
	ScheduleEntryID string   `json:"schedule_entry_id" validate:"omitempty,uuid"`
	DeviceID        string   `json:"-"`
}

func (r ScanRequest) Position() *engine.Coordinate {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &engine.Coordinate{Lat: *r.Latitude, Lng: *r.Longitude}
}

type ScanResponse struct {
	ID              string      `json:"id"`
	Kind            string      `json:"kind"`
	Date            engine.Date `json:"date"`
	ScannedAt       time.Time   `json:"scanned_at"`
	ScheduleEntryID string      `json:"schedule_entry_id,omitempty"`
	DistanceMeters  float64     `json:"distance_meters"`
	OnTime          bool        `json:"on_time"`
	LatenessMinutes int         `json:"lateness_minutes"`
	Overtime        bool        `json:"overtime"`
	Message         string      `json:"message,omitempty"`
}

func FromModel(m model.ScanEventModel) ScanResponse {
	out := ScanResponse{
		ID:              m.ID.String(),
		Kind:            m.Kind,
		Date:            dbtime.FromColumn(m.ScanDate),
		ScannedAt:       dbtime.ToSchoolTime(m.ScannedAt),
		DistanceMeters:  m.DistanceMeters,
		OnTime:          !m.IsLate,
		LatenessMinutes: m.LatenessMinutes,
		Overtime:        m.Overtime,
	}
	if m.ScheduleEntryID != nil {
		out.ScheduleEntryID = m.ScheduleEntryID.String()
	}
	return out
}

func FromModels(rows []model.ScanEventModel) []ScanResponse {
	out := make([]ScanResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

// TodayView: tendik → Daily, guru/pembina → Lessons.
type TodayView struct {
	Role    string              `json:"role"`
	Date    engine.Date         `json:"date"`
	Daily   *engine.DailyStatus `json:"daily,omitempty"`
	Lessons []engine.ReportRow  `json:"lessons,omitempty"`
}
