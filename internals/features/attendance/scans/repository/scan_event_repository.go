package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/scans/model"
	"hadirku_backend/internals/helpers/dbtime"
)

type ScanRepository struct {
	DB *gorm.DB
}

func NewScanRepository(db *gorm.DB) *ScanRepository {
	return &ScanRepository{DB: db}
}

// Create: duplikat ditolak partial unique index (SQLSTATE 23505).
func (r *ScanRepository) Create(ctx context.Context, m *model.ScanEventModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *ScanRepository) ListByUserRange(ctx context.Context, userID uuid.UUID, from, to engine.Date) ([]model.ScanEventModel, error) {
	var rows []model.ScanEventModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND scan_date BETWEEN ? AND ?", userID, dbtime.ToColumn(from), dbtime.ToColumn(to)).
		Order("scanned_at ASC").
		Find(&rows).Error
	return rows, err
}

// ListRange: semua scan dalam rentang (inklusif), untuk laporan.
func (r *ScanRepository) ListRange(ctx context.Context, from, to engine.Date) ([]model.ScanEventModel, error) {
	var rows []model.ScanEventModel
	err := r.DB.WithContext(ctx).
		Where("scan_date BETWEEN ? AND ?", dbtime.ToColumn(from), dbtime.ToColumn(to)).
		Order("scanned_at ASC").
		Find(&rows).Error
	return rows, err
}
