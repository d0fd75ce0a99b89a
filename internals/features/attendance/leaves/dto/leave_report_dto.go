package dto

import (
	"strings"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/leaves/model"
	"hadirku_backend/internals/helpers/dbtime"
)

type CreateLeaveRequest struct {
	Reason          string `json:"reason" validate:"required,oneof=sakit izin dinas_luar"`
	Note            string `json:"note" validate:"max=500"`
	AffectedPeriods []int  `json:"affected_periods" validate:"omitempty,max=20,dive,min=1,max=20"`
}

func (r *CreateLeaveRequest) Normalize() {
	r.Reason = strings.ToLower(strings.TrimSpace(r.Reason))
	r.Note = strings.TrimSpace(r.Note)
}

type LeaveResponse struct {
	ID              string      `json:"id"`
	Date            engine.Date `json:"date"`
	Reason          string      `json:"reason"`
	ReasonLabel     string      `json:"reason_label"`
	Note            string      `json:"note"`
	AffectedPeriods []int64     `json:"affected_periods"`
}

func FromModel(m model.LeaveReportModel) LeaveResponse {
	periods := []int64(m.AffectedPeriods)
	if periods == nil {
		periods = []int64{}
	}
	return LeaveResponse{
		ID:              m.ID.String(),
		Date:            dbtime.FromColumn(m.LeaveDate),
		Reason:          m.Reason,
		ReasonLabel:     engine.ReasonCode(m.Reason).Label(),
		Note:            m.Note,
		AffectedPeriods: periods,
	}
}

func FromModels(rows []model.LeaveReportModel) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
