package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID        uuid.UUID      `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementTitle     string         `gorm:"column:announcement_title;type:varchar(200);not null" json:"announcement_title"`
	AnnouncementContent   string         `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementCreatedBy uuid.UUID      `gorm:"column:announcement_created_by;type:uuid;not null" json:"announcement_created_by"`
	AnnouncementIsPinned  bool           `gorm:"column:announcement_is_pinned;not null;default:false" json:"announcement_is_pinned"`
	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime;index" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"-"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
