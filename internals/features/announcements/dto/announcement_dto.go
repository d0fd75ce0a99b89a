package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hadirku_backend/internals/features/announcements/model"
)

/* ===================== REQUESTS ===================== */

// created_by diambil dari token oleh controller, bukan dari body
type CreateAnnouncementRequest struct {
	AnnouncementTitle    string `json:"announcement_title" validate:"required,min=3,max=200"`
	AnnouncementContent  string `json:"announcement_content" validate:"required"`
	AnnouncementIsPinned bool   `json:"announcement_is_pinned"`
}

func (r *CreateAnnouncementRequest) Normalize() {
	r.AnnouncementTitle = strings.TrimSpace(r.AnnouncementTitle)
	r.AnnouncementContent = strings.TrimSpace(r.AnnouncementContent)
}

func (r CreateAnnouncementRequest) ToModel(createdBy uuid.UUID) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementTitle:     r.AnnouncementTitle,
		AnnouncementContent:   r.AnnouncementContent,
		AnnouncementCreatedBy: createdBy,
		AnnouncementIsPinned:  r.AnnouncementIsPinned,
	}
}

/* ===================== RESPONSE ===================== */

type AnnouncementResponse struct {
	AnnouncementID        uuid.UUID `json:"announcement_id"`
	AnnouncementTitle     string    `json:"announcement_title"`
	AnnouncementContent   string    `json:"announcement_content"`
	AnnouncementIsPinned  bool      `json:"announcement_is_pinned"`
	AnnouncementCreatedAt time.Time `json:"announcement_created_at"`
}

func FromModel(m model.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID:        m.AnnouncementID,
		AnnouncementTitle:     m.AnnouncementTitle,
		AnnouncementContent:   m.AnnouncementContent,
		AnnouncementIsPinned:  m.AnnouncementIsPinned,
		AnnouncementCreatedAt: m.AnnouncementCreatedAt,
	}
}

func FromModels(rows []model.AnnouncementModel) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
