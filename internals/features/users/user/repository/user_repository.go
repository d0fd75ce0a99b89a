package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/users/user/model"
)

// ErrAlreadyLocked: kolom satu-arah sudah terisi, tidak bisa diganti.
var ErrAlreadyLocked = errors.New("sudah terkunci dan tidak bisa diubah")

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.WithContext(ctx).Where("google_id = ?", googleID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error {
	return r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ? AND google_id IS NULL", id).
		Update("google_id", googleID).Error
}

type ListFilter struct {
	Role   string
	Search string
	Offset int
	Limit  int
}

func (r *UserRepository) List(ctx context.Context, f ListFilter) ([]model.UserModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.UserModel{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ? OR schedule_code ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []model.UserModel
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	if err := q.Order("full_name ASC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListScheduled: user aktif yang sudah mengisi kode jadwal (guru/pembina).
func (r *UserRepository) ListScheduled(ctx context.Context) ([]model.UserModel, error) {
	var out []model.UserModel
	err := r.DB.WithContext(ctx).
		Where("is_active = TRUE AND schedule_code IS NOT NULL AND schedule_code <> ''").
		Find(&out).Error
	return out, err
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]model.UserModel, error) {
	var out []model.UserModel
	err := r.DB.WithContext(ctx).
		Where("role = ? AND is_active = TRUE", role).
		Order("full_name ASC").
		Find(&out).Error
	return out, err
}

// setOnce: UPDATE bersyarat; 0 baris → user tidak ada atau sudah terkunci.
func (r *UserRepository) setOnce(ctx context.Context, id uuid.UUID, column, value string) error {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ? AND ("+column+" IS NULL OR "+column+" = '')", id).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrAlreadyLocked
}

func (r *UserRepository) SetScheduleCodeOnce(ctx context.Context, id uuid.UUID, code string) error {
	return r.setOnce(ctx, id, "schedule_code", code)
}

func (r *UserRepository) BindDeviceOnce(ctx context.Context, id uuid.UUID, deviceID string) error {
	return r.setOnce(ctx, id, "device_binding", deviceID)
}

func (r *UserRepository) UpdatePhotoURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.DB.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("photo_url", url).Error
}
