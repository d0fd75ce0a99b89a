package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"hadirku_backend/internals/features/schedules/dto"
	"hadirku_backend/internals/features/schedules/model"
	"hadirku_backend/internals/features/schedules/repository"
)

var ErrEmptyImport = errors.New("tidak ada baris jadwal yang valid, jadwal lama tidak diubah")

type ScheduleService struct {
	Repo *repository.ScheduleRepository
	Log  *zap.Logger
}

func NewScheduleService(repo *repository.ScheduleRepository, log *zap.Logger) *ScheduleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleService{Repo: repo, Log: log}
}

// Import: parse workbook lalu ganti seluruh jadwal.
func (s *ScheduleService) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	rows, rowErrs, err := ParseWorkbook(r)
	if err != nil {
		return nil, err
	}
	res := &dto.ImportResult{Skipped: len(rowErrs), Errors: rowErrs}
	if res.Errors == nil {
		res.Errors = []dto.RowError{}
	}
	if len(rows) == 0 {
		return res, ErrEmptyImport
	}
	if err := s.Repo.ReplaceAll(ctx, rows); err != nil {
		return nil, err
	}
	res.Imported = len(rows)
	s.Log.Info("master schedule imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
	return res, nil
}

func (s *ScheduleService) List(ctx context.Context, f repository.ListFilter) ([]model.MasterScheduleModel, error) {
	return s.Repo.List(ctx, f)
}

// Mine: jadwal milik satu kode (guru/pembina).
func (s *ScheduleService) Mine(ctx context.Context, code string) ([]model.MasterScheduleModel, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return []model.MasterScheduleModel{}, nil
	}
	return s.Repo.List(ctx, repository.ListFilter{ScheduleCode: code})
}

func (s *ScheduleService) FindByID(ctx context.Context, id string) (*model.MasterScheduleModel, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ScheduleService) Codes(ctx context.Context) ([]dto.CodeOption, error) {
	return s.Repo.Codes(ctx)
}

func (s *ScheduleService) CodeExists(ctx context.Context, code string) (bool, error) {
	return s.Repo.CodeExists(ctx, code)
}
