package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/qrtoken"
	leaveModel "hadirku_backend/internals/features/attendance/leaves/model"
	"hadirku_backend/internals/features/attendance/scans/dto"
	"hadirku_backend/internals/features/attendance/scans/model"
	scheduleModel "hadirku_backend/internals/features/schedules/model"
	userModel "hadirku_backend/internals/features/users/user/model"
	"hadirku_backend/internals/helpers/dbtime"
)

/* ---------- fakes ---------- */

type fakeUsers map[uuid.UUID]*userModel.UserModel

func (f fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTokens struct{ valid string }

func (f fakeTokens) Verify(_ context.Context, scanned string, _ time.Time) error {
	if scanned != f.valid {
		return qrtoken.ErrTokenMismatch
	}
	return nil
}

type fakeSchedules []scheduleModel.MasterScheduleModel

func (f fakeSchedules) FindByID(_ context.Context, id string) (*scheduleModel.MasterScheduleModel, error) {
	for i := range f {
		if f[i].ID.String() == id {
			return &f[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeSchedules) Mine(_ context.Context, code string) ([]scheduleModel.MasterScheduleModel, error) {
	var out []scheduleModel.MasterScheduleModel
	for _, e := range f {
		if e.ScheduleCode == code {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeLeaves map[uuid.UUID]*leaveModel.LeaveReportModel

func (f fakeLeaves) FindOn(_ context.Context, userID uuid.UUID, _ engine.Date) (*leaveModel.LeaveReportModel, error) {
	if l, ok := f[userID]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memScans struct{ rows []model.ScanEventModel }

func (m *memScans) Create(_ context.Context, ev *model.ScanEventModel) error {
	for _, r := range m.rows {
		if r.UserID == ev.UserID && r.Kind == ev.Kind && r.ScanDate == ev.ScanDate &&
			((r.ScheduleEntryID == nil && ev.ScheduleEntryID == nil) ||
				(r.ScheduleEntryID != nil && ev.ScheduleEntryID != nil && *r.ScheduleEntryID == *ev.ScheduleEntryID)) {
			return errors.New("duplicate")
		}
	}
	ev.ID = uuid.New()
	m.rows = append(m.rows, *ev)
	return nil
}

func (m *memScans) ListByUserRange(_ context.Context, userID uuid.UUID, _, _ engine.Date) ([]model.ScanEventModel, error) {
	var out []model.ScanEventModel
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

/* ---------- fixture ---------- */

var (
	schoolLat = -6.2
	schoolLng = 106.816666
)

type fixture struct {
	svc    *ScanService
	scans  *memScans
	leaves fakeLeaves
	staff  *userModel.UserModel
	guru   *userModel.UserModel
	admin  *userModel.UserModel
	mtk    scheduleModel.MasterScheduleModel
	other  scheduleModel.MasterScheduleModel
	now    time.Time
}

func strPtr(s string) *string { return &s }

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	configs.Attendance = configs.AttendanceSettings{Timezone: "UTC"}
	staff := &userModel.UserModel{ID: uuid.New(), FullName: "Tono", Role: constants.RoleStaff, DeviceBinding: strPtr("dev-staff"), IsActive: true}
	guru := &userModel.UserModel{ID: uuid.New(), FullName: "Sari", Role: constants.RoleTeacher, ScheduleCode: strPtr("G01"), DeviceBinding: strPtr("dev-guru"), IsActive: true}
	admin := &userModel.UserModel{ID: uuid.New(), FullName: "Admin", Role: constants.RoleAdmin, IsActive: true}

	mtk := scheduleModel.MasterScheduleModel{ID: uuid.New(), ScheduleCode: "G01", PersonDisplayName: "Bu Sari", Subject: "Matematika", DayOfWeek: int(time.Monday), TimeRange: "08:00 - 08:40", ClassName: "X-1", PeriodIndex: 2}
	other := scheduleModel.MasterScheduleModel{ID: uuid.New(), ScheduleCode: "G02", PersonDisplayName: "Pak Adi", Subject: "IPA", DayOfWeek: int(time.Monday), TimeRange: "08:00 - 08:40", ClassName: "X-2", PeriodIndex: 2}

	scans := &memScans{}
	leaves := fakeLeaves{}
	svc := NewScanService(
		fakeUsers{staff.ID: staff, guru.ID: guru, admin.ID: admin},
		fakeTokens{valid: "tok"},
		fakeSchedules{mtk, other},
		leaves,
		scans,
		configs.AttendanceSettings{SchoolLat: schoolLat, SchoolLng: schoolLng, RadiusMeters: 100, FinePerLate: 2000},
		zap.NewNop(),
	)
	svc.Now = func() time.Time { return now }
	return &fixture{svc: svc, scans: scans, leaves: leaves, staff: staff, guru: guru, admin: admin, mtk: mtk, other: other, now: now}
}

func atSchool(token, device string) dto.ScanRequest {
	lat, lng := schoolLat, schoolLng
	return dto.ScanRequest{Token: token, Latitude: &lat, Longitude: &lng, DeviceID: device}
}

// Senin, 1 Januari 2024
func monday(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC) }

/* ---------- tests ---------- */

func TestRecord_StaffLateCheckIn(t *testing.T) {
	f := newFixture(t, monday(7, 20))
	ev, msg, err := f.svc.Record(context.Background(), f.staff.ID, engine.ScanCheckIn, atSchool("tok", "dev-staff"))
	require.NoError(t, err)
	assert.Equal(t, 5, ev.LatenessMinutes)
	assert.Equal(t, "Terlambat 5 menit", msg)
	assert.Nil(t, ev.ScheduleEntryID)
	assert.Equal(t, engine.Date{Year: 2024, Month: time.January, Day: 1}, dbtime.FromColumn(ev.ScanDate))

	_, _, err = f.svc.Record(context.Background(), f.staff.ID, engine.ScanCheckIn, atSchool("tok", "dev-staff"))
	assert.Error(t, err, "second daily check-in must be rejected by the store")
}

func TestRecord_PipelineRejections(t *testing.T) {
	f := newFixture(t, monday(7, 0))
	ctx := context.Background()

	_, _, err := f.svc.Record(ctx, f.admin.ID, engine.ScanCheckIn, atSchool("tok", "x"))
	assert.ErrorIs(t, err, ErrAdminCannotScan)

	_, _, err = f.svc.Record(ctx, f.staff.ID, engine.ScanCheckIn, atSchool("wrong", "dev-staff"))
	assert.ErrorIs(t, err, qrtoken.ErrTokenMismatch)

	noGPS := atSchool("tok", "dev-staff")
	noGPS.Latitude = nil
	_, _, err = f.svc.Record(ctx, f.staff.ID, engine.ScanCheckIn, noGPS)
	assert.ErrorIs(t, err, engine.ErrPositionUnavailable)

	far := atSchool("tok", "dev-staff")
	farLat := schoolLat + 0.01
	far.Latitude = &farLat
	_, _, err = f.svc.Record(ctx, f.staff.ID, engine.ScanCheckIn, far)
	assert.ErrorIs(t, err, engine.ErrOutsideRadius)

	_, _, err = f.svc.Record(ctx, f.staff.ID, engine.ScanCheckIn, atSchool("tok", ""))
	assert.ErrorIs(t, err, ErrDeviceMissing)

	_, _, err = f.svc.Record(ctx, f.staff.ID, engine.ScanCheckIn, atSchool("tok", "other-phone"))
	assert.ErrorIs(t, err, ErrDeviceMismatch)

	assert.Empty(t, f.scans.rows)
}

func TestRecord_StaffOutsideWindow(t *testing.T) {
	f := newFixture(t, monday(4, 30))
	_, _, err := f.svc.Record(context.Background(), f.staff.ID, engine.ScanCheckIn, atSchool("tok", "dev-staff"))
	var we *WindowError
	require.ErrorAs(t, err, &we)
	assert.Contains(t, we.Message, "belum dibuka")
}

func TestRecord_LeaveBlocksScan(t *testing.T) {
	f := newFixture(t, monday(7, 0))
	f.leaves[f.staff.ID] = &leaveModel.LeaveReportModel{UserID: f.staff.ID, Reason: "sakit"}
	_, _, err := f.svc.Record(context.Background(), f.staff.ID, engine.ScanCheckIn, atSchool("tok", "dev-staff"))
	assert.ErrorIs(t, err, ErrLeaveAlreadyFiled)
}

func TestRecord_TeacherLesson(t *testing.T) {
	f := newFixture(t, monday(8, 5))
	ctx := context.Background()

	req := atSchool("tok", "dev-guru")
	_, _, err := f.svc.Record(ctx, f.guru.ID, engine.ScanCheckIn, req)
	assert.ErrorIs(t, err, ErrScheduleRequired)

	_, _, err = f.svc.Record(ctx, f.guru.ID, engine.ScanCheckOut, req)
	assert.ErrorIs(t, err, ErrLessonCheckOut)

	req.ScheduleEntryID = f.mtk.ID.String()
	ev, msg, err := f.svc.Record(ctx, f.guru.ID, engine.ScanCheckIn, req)
	require.NoError(t, err)
	require.NotNil(t, ev.ScheduleEntryID)
	assert.Equal(t, f.mtk.ID, *ev.ScheduleEntryID)
	assert.Equal(t, 5, ev.LatenessMinutes)
	assert.Contains(t, msg, "Terlambat 5 menit")
}

func TestRecord_LateUnderOneMinute(t *testing.T) {
	f := newFixture(t, monday(8, 0).Add(30*time.Second))
	req := atSchool("tok", "dev-guru")
	req.ScheduleEntryID = f.mtk.ID.String()

	ev, _, err := f.svc.Record(context.Background(), f.guru.ID, engine.ScanCheckIn, req)
	require.NoError(t, err)
	assert.True(t, ev.IsLate)
	assert.Zero(t, ev.LatenessMinutes)
	assert.False(t, dto.FromModel(*ev).OnTime)

	f = newFixture(t, monday(7, 15).Add(30*time.Second))
	ev, _, err = f.svc.Record(context.Background(), f.staff.ID, engine.ScanCheckIn, atSchool("tok", "dev-staff"))
	require.NoError(t, err)
	assert.True(t, ev.IsLate)
	assert.False(t, dto.FromModel(*ev).OnTime)
}

func TestRecord_TeacherWrongSchedule(t *testing.T) {
	f := newFixture(t, monday(8, 5))
	ctx := context.Background()

	req := atSchool("tok", "dev-guru")
	req.ScheduleEntryID = f.other.ID.String()
	_, _, err := f.svc.Record(ctx, f.guru.ID, engine.ScanCheckIn, req)
	assert.ErrorIs(t, err, ErrScheduleNotYours)

	req.ScheduleEntryID = uuid.NewString()
	_, _, err = f.svc.Record(ctx, f.guru.ID, engine.ScanCheckIn, req)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Selasa: jadwal Senin ditolak
	f.svc.Now = func() time.Time { return monday(8, 5).AddDate(0, 0, 1) }
	req.ScheduleEntryID = f.mtk.ID.String()
	_, _, err = f.svc.Record(ctx, f.guru.ID, engine.ScanCheckIn, req)
	assert.ErrorIs(t, err, ErrScheduleNotToday)
}

func TestToday_StaffAndTeacher(t *testing.T) {
	f := newFixture(t, monday(7, 20))
	ctx := context.Background()

	_, _, err := f.svc.Record(ctx, f.staff.ID, engine.ScanCheckIn, atSchool("tok", "dev-staff"))
	require.NoError(t, err)

	view, err := f.svc.Today(ctx, f.staff.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Daily)
	assert.Equal(t, engine.StatusLate, view.Daily.Status)
	assert.Equal(t, int64(2000), view.Daily.FineAmount)

	view, err = f.svc.Today(ctx, f.guru.ID)
	require.NoError(t, err)
	require.Len(t, view.Lessons, 1)
	assert.Equal(t, f.mtk.ID.String(), view.Lessons[0].ScheduleEntryID)
	assert.Equal(t, engine.StatusPending, view.Lessons[0].Status)

	_, err = f.svc.Today(ctx, f.admin.ID)
	assert.ErrorIs(t, err, ErrAdminCannotScan)
}
