package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hadirku_backend/internals/configs"
	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/attendance/engine"
	leaveModel "hadirku_backend/internals/features/attendance/leaves/model"
	scanModel "hadirku_backend/internals/features/attendance/scans/model"
	"hadirku_backend/internals/features/reports/dto"
	"hadirku_backend/internals/features/reports/summary"
	scheduleModel "hadirku_backend/internals/features/schedules/model"
	scheduleRepo "hadirku_backend/internals/features/schedules/repository"
	userModel "hadirku_backend/internals/features/users/user/model"
	"hadirku_backend/internals/helpers/dbtime"
)

type stubSchedules []scheduleModel.MasterScheduleModel

func (s stubSchedules) List(context.Context, scheduleRepo.ListFilter) ([]scheduleModel.MasterScheduleModel, error) {
	return s, nil
}

type stubUsers []userModel.UserModel

func (s stubUsers) ListScheduled(context.Context) ([]userModel.UserModel, error) {
	var out []userModel.UserModel
	for _, u := range s {
		if u.HasScheduleCode() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s stubUsers) ListByRole(_ context.Context, role string) ([]userModel.UserModel, error) {
	var out []userModel.UserModel
	for _, u := range s {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type stubScans []scanModel.ScanEventModel

func (s stubScans) ListRange(context.Context, engine.Date, engine.Date) ([]scanModel.ScanEventModel, error) {
	return s, nil
}

type stubLeaves []leaveModel.LeaveReportModel

func (s stubLeaves) ListRange(context.Context, engine.Date, engine.Date) ([]leaveModel.LeaveReportModel, error) {
	return s, nil
}

type captureSummarizer struct{ got []summary.Message }

func (c *captureSummarizer) Complete(_ context.Context, m []summary.Message) (string, error) {
	c.got = m
	return "ringkas", nil
}

func d(day int) engine.Date { return engine.Date{Year: 2024, Month: time.January, Day: day} }

func strPtr(s string) *string { return &s }

type reportFixture struct {
	svc   *ReportService
	guru  userModel.UserModel
	tono  userModel.UserModel
	mtkID uuid.UUID
	sum   *captureSummarizer
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	configs.Attendance = configs.AttendanceSettings{Timezone: "UTC"}

	guru := userModel.UserModel{ID: uuid.New(), FullName: "Sari", Role: constants.RoleTeacher, ScheduleCode: strPtr("G01")}
	tono := userModel.UserModel{ID: uuid.New(), FullName: "Tono", Role: constants.RoleStaff}
	mtk := scheduleModel.MasterScheduleModel{ID: uuid.New(), ScheduleCode: "G01", PersonDisplayName: "Bu Sari", Subject: "Matematika", DayOfWeek: int(time.Monday), TimeRange: "08:00 - 08:40", ClassName: "X-1", PeriodIndex: 2}

	mtkID := mtk.ID
	scans := stubScans{
		{UserID: guru.ID, ScheduleEntryID: &mtkID, Kind: "check_in", ScanDate: dbtime.ToColumn(d(1)), ScannedAt: time.Date(2024, 1, 1, 8, 10, 0, 0, time.UTC)},
		{UserID: tono.ID, Kind: "check_in", ScanDate: dbtime.ToColumn(d(1)), ScannedAt: time.Date(2024, 1, 1, 7, 30, 0, 0, time.UTC)},
		{UserID: tono.ID, Kind: "check_out", ScanDate: dbtime.ToColumn(d(1)), ScannedAt: time.Date(2024, 1, 1, 15, 5, 0, 0, time.UTC)},
	}
	leaves := stubLeaves{
		{UserID: tono.ID, LeaveDate: dbtime.ToColumn(d(2)), Reason: "sakit", AffectedPeriods: pq.Int64Array{}},
	}

	sum := &captureSummarizer{}
	svc := NewReportService(stubSchedules{mtk}, stubUsers{guru, tono}, scans, leaves, sum,
		configs.AttendanceSettings{FinePerLate: 2000}, zap.NewNop())
	svc.Now = func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) }
	return reportFixture{svc: svc, guru: guru, tono: tono, mtkID: mtkID, sum: sum}
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(d(1), d(1)))
	assert.ErrorIs(t, ValidateRange(d(2), d(1)), ErrInvalidRange)
	assert.NoError(t, ValidateRange(d(1), d(1).AddDays(MaxRangeDays-1)))
	assert.ErrorIs(t, ValidateRange(d(1), d(1).AddDays(MaxRangeDays)), ErrRangeTooLong)
}

func TestComprehensive(t *testing.T) {
	f := newReportFixture(t)
	rows, err := f.svc.Comprehensive(context.Background(), dto.ReportQuery{From: d(1), To: d(7)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, engine.StatusLate, rows[0].Status)
	assert.Equal(t, 10, rows[0].LatenessMinutes)
	assert.Equal(t, f.guru.ID.String(), rows[0].PersonID)

	table := ComprehensiveTable(rows, d(1), d(7))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, len(table.Headers), len(table.Rows[0]))
	assert.Equal(t, "Terlambat", table.Rows[0][9])
}

func TestStaffRecap(t *testing.T) {
	f := newReportFixture(t)
	recap, err := f.svc.StaffRecap(context.Background(), dto.ReportQuery{From: d(1), To: d(7)})
	require.NoError(t, err)

	// Senin–Jumat (weekend tanpa scan = libur, tidak ditampilkan)
	require.Len(t, recap.Days, 5)
	assert.Equal(t, engine.StatusCheckedOut, recap.Days[0].Status)
	assert.Equal(t, 15, recap.Days[0].LatenessMinutes)
	assert.Equal(t, engine.StatusExcused, recap.Days[1].Status)
	assert.Equal(t, engine.StatusAbsent, recap.Days[2].Status)

	require.Len(t, recap.Totals, 1)
	tot := recap.Totals[0]
	assert.Equal(t, 1, tot.Late)
	assert.Equal(t, 1, tot.Excused)
	assert.Equal(t, 3, tot.Absent)
	assert.Equal(t, int64(2000), tot.TotalFine)

	table := StaffTable(recap)
	assert.Len(t, table.Rows, 6)
	assert.Equal(t, "Sakit", table.Rows[1][4])
	assert.Equal(t, "Rp2.000", table.Rows[5][8])
}

func TestAccumulate_LateFlagNotMinutes(t *testing.T) {
	var tot dto.StaffTotal
	// masuk 07:15:30: telat 0 menit tapi tetap telat & didenda
	accumulate(&tot, engine.DailyStatus{Status: engine.StatusCheckedOut, Late: true, FineAmount: 2000})
	accumulate(&tot, engine.DailyStatus{Status: engine.StatusCheckedOut})

	assert.Equal(t, 1, tot.Late)
	assert.Equal(t, 1, tot.OnTime)
	assert.Equal(t, int64(2000), tot.TotalFine)
}

func TestSummary(t *testing.T) {
	f := newReportFixture(t)
	res, err := f.svc.Summary(context.Background(), d(1), d(7))
	require.NoError(t, err)
	assert.Equal(t, "ringkas", res.Text)
	assert.Equal(t, 2, res.Counts[engine.StatusLate]+res.Counts[engine.StatusCheckedOut])
	require.Len(t, f.sum.got, 2)
	assert.Contains(t, f.sum.got[1].Content, "Sari")

	f.svc.Summarizer = nil
	_, err = f.svc.Summary(context.Background(), d(1), d(7))
	assert.ErrorIs(t, err, summary.ErrNotConfigured)
}

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp0", rupiah(0))
	assert.Equal(t, "Rp999", rupiah(999))
	assert.Equal(t, "Rp12.500", rupiah(12500))
	assert.Equal(t, "Rp1.000.000", rupiah(1000000))
	assert.Equal(t, "-Rp2.000", rupiah(-2000))
}
