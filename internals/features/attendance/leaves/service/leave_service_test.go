package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/leaves/dto"
	"hadirku_backend/internals/features/attendance/leaves/model"
	"hadirku_backend/internals/helpers/dbtime"
)

type memRepo struct {
	created []*model.LeaveReportModel
}

func (m *memRepo) Create(_ context.Context, r *model.LeaveReportModel) error {
	m.created = append(m.created, r)
	return nil
}

func (m *memRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]model.LeaveReportModel, int64, error) {
	return nil, 0, nil
}

func newService(now time.Time) (*LeaveService, *memRepo) {
	repo := &memRepo{}
	svc := NewLeaveService(repo, zap.NewNop())
	svc.Now = func() time.Time { return now }
	return svc, repo
}

func TestCreate_UsesTodayAndDedupesPeriods(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	svc, repo := newService(now)
	actor := constants.TeacherActor{ID: uuid.NewString(), ScheduleCode: "G01"}

	m, err := svc.Create(context.Background(), actor, dto.CreateLeaveRequest{
		Reason: " Sakit ", Note: "demam", AffectedPeriods: []int{2, 3, 2},
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, "sakit", m.Reason)
	assert.Equal(t, engine.Date{Year: 2024, Month: time.March, Day: 4}, dbtime.FromColumn(m.LeaveDate))
	assert.Equal(t, []int64{2, 3}, []int64(m.AffectedPeriods))
}

func TestCreate_StaffIgnoresPeriods(t *testing.T) {
	svc, _ := newService(time.Now())
	m, err := svc.Create(context.Background(), constants.StaffActor{ID: uuid.NewString()}, dto.CreateLeaveRequest{
		Reason: "izin", AffectedPeriods: []int{1},
	})
	require.NoError(t, err)
	assert.Empty(t, m.AffectedPeriods)
}

func TestCreate_AdminRejected(t *testing.T) {
	svc, repo := newService(time.Now())
	_, err := svc.Create(context.Background(), constants.AdminActor{ID: uuid.NewString()}, dto.CreateLeaveRequest{Reason: "izin"})
	assert.ErrorIs(t, err, ErrAdminNoLeave)
	assert.Empty(t, repo.created)
}
