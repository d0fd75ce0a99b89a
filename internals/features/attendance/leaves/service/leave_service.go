package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/leaves/dto"
	"hadirku_backend/internals/features/attendance/leaves/model"
	"hadirku_backend/internals/helpers/dbtime"
)

var ErrAdminNoLeave = errors.New("admin tidak mengirim laporan izin")

type Repository interface {
	Create(ctx context.Context, m *model.LeaveReportModel) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.LeaveReportModel, int64, error)
}

type LeaveService struct {
	Repo Repository
	Log  *zap.Logger
	Now  func() time.Time
}

func NewLeaveService(repo Repository, log *zap.Logger) *LeaveService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeaveService{Repo: repo, Log: log, Now: dbtime.NowInSchool}
}

// Create: tanggal selalu "hari ini" di zona sekolah, tidak bisa dipilih klien.
func (s *LeaveService) Create(ctx context.Context, actor constants.Actor, req dto.CreateLeaveRequest) (*model.LeaveReportModel, error) {
	if _, ok := actor.(constants.AdminActor); ok {
		return nil, ErrAdminNoLeave
	}
	userID, err := uuid.Parse(actor.UserID())
	if err != nil {
		return nil, err
	}
	req.Normalize()

	var periods pq.Int64Array
	// jam ke hanya bermakna untuk guru/pembina
	switch actor.(type) {
	case constants.TeacherActor, constants.CoachActor:
		seen := map[int]bool{}
		for _, p := range req.AffectedPeriods {
			if !seen[p] {
				seen[p] = true
				periods = append(periods, int64(p))
			}
		}
	}

	m := &model.LeaveReportModel{
		UserID:          userID,
		LeaveDate:       dbtime.ToColumn(engine.DateOf(s.Now())),
		Reason:          req.Reason,
		Note:            req.Note,
		AffectedPeriods: periods,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.Log.Info("leave reported", zap.String("user_id", actor.UserID()), zap.String("reason", req.Reason))
	return m, nil
}

func (s *LeaveService) ListMine(ctx context.Context, actor constants.Actor, offset, limit int) ([]model.LeaveReportModel, int64, error) {
	userID, err := uuid.Parse(actor.UserID())
	if err != nil {
		return nil, 0, err
	}
	return s.Repo.ListByUser(ctx, userID, offset, limit)
}
