package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users.
// schedule_code & device_binding diisi sekali oleh pemilik akun (Unset → Set).
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName      string    `gorm:"size:120;not null" json:"full_name"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	GoogleID      *string   `gorm:"size:255;uniqueIndex" json:"-"`
	Role          string    `gorm:"type:varchar(20);not null;index" json:"role"`
	ScheduleCode  *string   `gorm:"size:30;index" json:"schedule_code,omitempty"`
	DeviceBinding *string   `gorm:"size:128" json:"-"`
	PhotoURL      *string   `gorm:"type:text" json:"photo_url,omitempty"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u UserModel) ScheduleCodeValue() string {
	if u.ScheduleCode == nil {
		return ""
	}
	return *u.ScheduleCode
}

func (u UserModel) HasScheduleCode() bool { return u.ScheduleCodeValue() != "" }

func (u UserModel) HasDevice() bool { return u.DeviceBinding != nil && *u.DeviceBinding != "" }
