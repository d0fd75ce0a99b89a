package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/leaves/model"
	"hadirku_backend/internals/helpers/dbtime"
)

type LeaveRepository struct {
	DB *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{DB: db}
}

func (r *LeaveRepository) Create(ctx context.Context, m *model.LeaveReportModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *LeaveRepository) FindOn(ctx context.Context, userID uuid.UUID, d engine.Date) (*model.LeaveReportModel, error) {
	var m model.LeaveReportModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND leave_date = ?", userID, dbtime.ToColumn(d)).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LeaveRepository) ExistsOn(ctx context.Context, userID uuid.UUID, d engine.Date) (bool, error) {
	var exists bool
	err := r.DB.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM leave_reports WHERE user_id = ? AND leave_date = ?)`,
		userID, dbtime.ToColumn(d),
	).Scan(&exists).Error
	return exists, err
}

// ListByUser: terbaru dulu + total untuk pagination.
func (r *LeaveRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.LeaveReportModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.LeaveReportModel{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.LeaveReportModel
	err := q.Order("leave_date DESC").Offset(offset).Limit(limit).Find(&rows).Error
	return rows, total, err
}

// ListRange: semua laporan dalam rentang (inklusif), untuk laporan admin.
func (r *LeaveRepository) ListRange(ctx context.Context, from, to engine.Date) ([]model.LeaveReportModel, error) {
	var rows []model.LeaveReportModel
	err := r.DB.WithContext(ctx).
		Where("leave_date BETWEEN ? AND ?", dbtime.ToColumn(from), dbtime.ToColumn(to)).
		Order("leave_date ASC").
		Find(&rows).Error
	return rows, err
}
