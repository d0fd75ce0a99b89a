package dto

import (
	"time"

	"github.com/google/uuid"

	"hadirku_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ScheduleCode string    `json:"schedule_code"`
	PhotoURL     string    `json:"photo_url"`
	IsActive     bool      `json:"is_active"`
	// flag kunci satu arah
	ScheduleCodeLocked bool      `json:"schedule_code_locked"`
	DeviceLocked       bool      `json:"device_locked"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromModel(u model.UserModel) UserResponse {
	photo := ""
	if u.PhotoURL != nil {
		photo = *u.PhotoURL
	}
	return UserResponse{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		Role:               u.Role,
		ScheduleCode:       u.ScheduleCodeValue(),
		PhotoURL:           photo,
		IsActive:           u.IsActive,
		ScheduleCodeLocked: u.HasScheduleCode(),
		DeviceLocked:       u.HasDevice(),
		CreatedAt:          u.CreatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromModel(u))
	}
	return out
}

type SetScheduleCodeRequest struct {
	ScheduleCode string `json:"schedule_code" validate:"required,max=30"`
}

type BindDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,min=8,max=128"`
}
