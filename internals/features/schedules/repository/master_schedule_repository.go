package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hadirku_backend/internals/features/schedules/dto"
	"hadirku_backend/internals/features/schedules/model"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

type ListFilter struct {
	ScheduleCode string
	ClassName    string
	DayOfWeek    *int
}

func (r *ScheduleRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.DB.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM master_schedules WHERE schedule_code = ?)`,
		strings.ToUpper(strings.TrimSpace(code)),
	).Scan(&exists).Error
	return exists, err
}

func (r *ScheduleRepository) List(ctx context.Context, f ListFilter) ([]model.MasterScheduleModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.MasterScheduleModel{})
	if f.ScheduleCode != "" {
		q = q.Where("schedule_code = ?", strings.ToUpper(f.ScheduleCode))
	}
	if f.ClassName != "" {
		q = q.Where("LOWER(class_name) = LOWER(?)", f.ClassName)
	}
	if f.DayOfWeek != nil {
		q = q.Where("day_of_week = ?", *f.DayOfWeek)
	}
	var rows []model.MasterScheduleModel
	err := q.Order("day_of_week ASC, period_index ASC, person_display_name ASC").Find(&rows).Error
	return rows, err
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*model.MasterScheduleModel, error) {
	var m model.MasterScheduleModel
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Codes: kode unik beserta nama penanggung jawabnya.
func (r *ScheduleRepository) Codes(ctx context.Context) ([]dto.CodeOption, error) {
	var out []dto.CodeOption
	err := r.DB.WithContext(ctx).
		Model(&model.MasterScheduleModel{}).
		Select("schedule_code, MIN(person_display_name) AS person_display_name").
		Group("schedule_code").
		Order("schedule_code ASC").
		Scan(&out).Error
	return out, err
}

// ReplaceAll mengganti seluruh jadwal dalam satu transaksi.
func (r *ScheduleRepository) ReplaceAll(ctx context.Context, rows []model.MasterScheduleModel) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM master_schedules`).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(&rows, 200).Error
	})
}
