package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/users/user/model"
	"hadirku_backend/internals/features/users/user/repository"
	helperOSS "hadirku_backend/internals/helpers/oss"
)

var (
	ErrScheduleCodeUnknown = errors.New("kode jadwal tidak ditemukan di jadwal induk")
	ErrNotScheduledRole    = errors.New("hanya guru/pembina yang memakai kode jadwal")
	ErrPhotoStorageOff     = errors.New("penyimpanan foto belum dikonfigurasi")
)

// ScheduleCodeChecker dipenuhi repository jadwal.
type ScheduleCodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

type PhotoUploader interface {
	UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, dir string, opt helperOSS.WebPOptions) (string, error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type ProfileService struct {
	Users     *repository.UserRepository
	Schedules ScheduleCodeChecker
	Photos    PhotoUploader // nil kalau ALI_OSS_* belum diset
	Log       *zap.Logger
}

func NewProfileService(users *repository.UserRepository, schedules ScheduleCodeChecker, photos PhotoUploader, log *zap.Logger) *ProfileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileService{Users: users, Schedules: schedules, Photos: photos, Log: log}
}

func (s *ProfileService) Me(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	return s.Users.FindByID(ctx, id)
}

// ResolveActor memuat user lalu memetakan role → varian Actor.
func (s *ProfileService) ResolveActor(ctx context.Context, id uuid.UUID) (constants.Actor, *model.UserModel, error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	a, err := constants.ActorFor(u.ID.String(), u.Role, u.ScheduleCodeValue())
	if err != nil {
		return nil, nil, err
	}
	return a, u, nil
}

func (s *ProfileService) SetScheduleCode(ctx context.Context, id uuid.UUID, code string) (*model.UserModel, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != constants.RoleTeacher && u.Role != constants.RoleCoach {
		return nil, ErrNotScheduledRole
	}
	if u.HasScheduleCode() {
		return nil, repository.ErrAlreadyLocked
	}
	ok, err := s.Schedules.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrScheduleCodeUnknown
	}

	if err := s.Users.SetScheduleCodeOnce(ctx, id, code); err != nil {
		return nil, err
	}
	s.Log.Info("schedule code locked", zap.String("user_id", id.String()), zap.String("code", code))
	u.ScheduleCode = &code
	return u, nil
}

func (s *ProfileService) BindDevice(ctx context.Context, id uuid.UUID, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if err := s.Users.BindDeviceOnce(ctx, id, deviceID); err != nil {
		return err
	}
	s.Log.Info("device bound", zap.String("user_id", id.String()))
	return nil
}

func (s *ProfileService) UploadPhoto(ctx context.Context, id uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if s.Photos == nil {
		return "", ErrPhotoStorageOff
	}
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := s.Photos.UploadAsWebP(ctx, fh, fmt.Sprintf("users/%s", id), helperOSS.ProfilePhotoOptions())
	if err != nil {
		return "", err
	}
	if err := s.Users.UpdatePhotoURL(ctx, id, url); err != nil {
		return "", err
	}

	if u.PhotoURL != nil && *u.PhotoURL != "" {
		if err := s.Photos.DeleteByPublicURL(ctx, *u.PhotoURL); err != nil {
			s.Log.Warn("delete old photo failed", zap.String("url", *u.PhotoURL), zap.Error(err))
		}
	}
	return url, nil
}
