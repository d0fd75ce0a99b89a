package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/attendance/engine"
	leaveModel "hadirku_backend/internals/features/attendance/leaves/model"
	"hadirku_backend/internals/features/attendance/scans/dto"
	"hadirku_backend/internals/features/attendance/scans/model"
	scheduleModel "hadirku_backend/internals/features/schedules/model"
	userModel "hadirku_backend/internals/features/users/user/model"
	"hadirku_backend/internals/helpers/dbtime"
)

var (
	ErrAdminCannotScan   = errors.New(constants.RoleErrorScanner("scan QR"))
	ErrDeviceMissing     = errors.New("ID perangkat tidak dikirim (header X-Device-ID)")
	ErrDeviceNotBound    = errors.New("perangkat belum didaftarkan, daftarkan perangkat di profil terlebih dahulu")
	ErrDeviceMismatch    = errors.New("presensi harus dilakukan dari perangkat yang terdaftar")
	ErrScheduleRequired  = errors.New("pilih jadwal pelajaran/eskul yang diabsen")
	ErrNoScheduleCode    = errors.New("kode jadwal belum diatur di profil")
	ErrScheduleNotYours  = errors.New("jadwal ini bukan milik kode jadwal Anda")
	ErrScheduleNotToday  = errors.New("jadwal ini bukan untuk hari ini")
	ErrLessonCheckOut    = errors.New("absen pulang hanya untuk tendik")
	ErrLeaveAlreadyFiled = errors.New("Anda sudah mengirim laporan izin untuk hari ini")
)

// WindowError: scan di luar jendela waktu; Message dari classifier.
type WindowError struct{ Message string }

func (e *WindowError) Error() string { return e.Message }

type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
}

type TokenVerifier interface {
	Verify(ctx context.Context, scanned string, now time.Time) error
}

type ScheduleFinder interface {
	FindByID(ctx context.Context, id string) (*scheduleModel.MasterScheduleModel, error)
	Mine(ctx context.Context, code string) ([]scheduleModel.MasterScheduleModel, error)
}

type LeaveFinder interface {
	FindOn(ctx context.Context, userID uuid.UUID, d engine.Date) (*leaveModel.LeaveReportModel, error)
}

type ScanStore interface {
	Create(ctx context.Context, m *model.ScanEventModel) error
	ListByUserRange(ctx context.Context, userID uuid.UUID, from, to engine.Date) ([]model.ScanEventModel, error)
}

type ScanService struct {
	Users     UserFinder
	Tokens    TokenVerifier
	Schedules ScheduleFinder
	Leaves    LeaveFinder
	Scans     ScanStore
	Settings  configs.AttendanceSettings
	Log       *zap.Logger
	Now       func() time.Time
}

func NewScanService(users UserFinder, tokens TokenVerifier, schedules ScheduleFinder, leaves LeaveFinder, scans ScanStore, settings configs.AttendanceSettings, log *zap.Logger) *ScanService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScanService{
		Users: users, Tokens: tokens, Schedules: schedules, Leaves: leaves, Scans: scans,
		Settings: settings, Log: log, Now: dbtime.NowInSchool,
	}
}

func (s *ScanService) reference() engine.Coordinate {
	return engine.Coordinate{Lat: s.Settings.SchoolLat, Lng: s.Settings.SchoolLng}
}

func (s *ScanService) resolveActor(ctx context.Context, userID uuid.UUID) (constants.Actor, *userModel.UserModel, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	a, err := constants.ActorFor(u.ID.String(), u.Role, u.ScheduleCodeValue())
	if err != nil {
		return nil, nil, err
	}
	return a, u, nil
}

// Record menjalankan seluruh validasi scan lalu menyimpan event.
// Urutan: aktor → token QR → geofence → perangkat → jendela waktu → izin → simpan.
func (s *ScanService) Record(ctx context.Context, userID uuid.UUID, kind engine.ScanKind, req dto.ScanRequest) (*model.ScanEventModel, string, error) {
	now := s.Now()
	today := engine.DateOf(now)

	actor, u, err := s.resolveActor(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if _, ok := actor.(constants.AdminActor); ok {
		return nil, "", ErrAdminCannotScan
	}

	if err := s.Tokens.Verify(ctx, req.Token, now); err != nil {
		return nil, "", err
	}

	pos := req.Position()
	distance, err := engine.ValidatePosition(pos, s.reference(), s.Settings.RadiusMeters)
	if err != nil {
		if errors.Is(err, engine.ErrOutsideRadius) {
			return nil, "", fmt.Errorf("%w (jarak %.0f m, maksimal %.0f m)", err, distance, s.Settings.RadiusMeters)
		}
		return nil, "", err
	}

	device := strings.TrimSpace(req.DeviceID)
	switch {
	case device == "":
		return nil, "", ErrDeviceMissing
	case !u.HasDevice():
		return nil, "", ErrDeviceNotBound
	case *u.DeviceBinding != device:
		return nil, "", ErrDeviceMismatch
	}

	ev := &model.ScanEventModel{
		UserID:         u.ID,
		ScanDate:       dbtime.ToColumn(today),
		Kind:           string(kind),
		ScannedAt:      now,
		DistanceMeters: distance,
		DeviceID:       device,
	}
	if pos != nil {
		ev.Latitude, ev.Longitude = &pos.Lat, &pos.Lng
	}

	var message string
	switch a := actor.(type) {
	case constants.StaffActor:
		message, err = s.classifyDaily(kind, now, ev)
	case constants.TeacherActor:
		message, err = s.classifyLesson(ctx, a.ScheduleCode, kind, now, req.ScheduleEntryID, ev)
	case constants.CoachActor:
		message, err = s.classifyLesson(ctx, a.ScheduleCode, kind, now, req.ScheduleEntryID, ev)
	}
	if err != nil {
		return nil, "", err
	}

	if _, err := s.Leaves.FindOn(ctx, u.ID, today); err == nil {
		return nil, "", ErrLeaveAlreadyFiled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if err := s.Scans.Create(ctx, ev); err != nil {
		return nil, "", err
	}
	s.Log.Info("scan recorded",
		zap.String("user_id", u.ID.String()),
		zap.String("kind", string(kind)),
		zap.Int("late_min", ev.LatenessMinutes),
		zap.Float64("distance_m", distance),
	)
	return ev, message, nil
}

func (s *ScanService) classifyDaily(kind engine.ScanKind, now time.Time, ev *model.ScanEventModel) (string, error) {
	if kind == engine.ScanCheckOut {
		res := engine.ClassifyCheckOut(now)
		if !res.Allowed {
			return "", &WindowError{Message: res.Message}
		}
		ev.Overtime = res.Overtime
		return res.Message, nil
	}
	res := engine.ClassifyCheckIn(now)
	if !res.Allowed {
		return "", &WindowError{Message: res.Message}
	}
	ev.Overtime = res.Overtime
	ev.IsLate = !res.OnTime
	ev.LatenessMinutes = res.LatenessMinutes
	return res.Message, nil
}

func (s *ScanService) classifyLesson(ctx context.Context, code string, kind engine.ScanKind, now time.Time, entryID string, ev *model.ScanEventModel) (string, error) {
	if kind != engine.ScanCheckIn {
		return "", ErrLessonCheckOut
	}
	if code == "" {
		return "", ErrNoScheduleCode
	}
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return "", ErrScheduleRequired
	}
	entry, err := s.Schedules.FindByID(ctx, entryID)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(entry.ScheduleCode, code) {
		return "", ErrScheduleNotYours
	}
	if entry.Weekday() != now.Weekday() {
		return "", ErrScheduleNotToday
	}

	id := entry.ID
	ev.ScheduleEntryID = &id

	res := engine.ClassifyLesson(now, entry.TimeRange)
	if !res.Valid {
		return "Presensi tercatat", nil
	}
	ev.IsLate = !res.OnTime
	ev.LatenessMinutes = res.LatenessMinutes
	if res.OnTime {
		return fmt.Sprintf("Tepat waktu untuk %s (%s)", entry.Subject, entry.ClassName), nil
	}
	return fmt.Sprintf("Terlambat %d menit untuk %s (%s)", res.LatenessMinutes, entry.Subject, entry.ClassName), nil
}

// Today: tampilan hari ini sesuai role.
func (s *ScanService) Today(ctx context.Context, userID uuid.UUID) (*dto.TodayView, error) {
	now := s.Now()
	today := engine.DateOf(now)

	actor, u, err := s.resolveActor(ctx, userID)
	if err != nil {
		return nil, err
	}

	scans, err := s.Scans.ListByUserRange(ctx, u.ID, today, today)
	if err != nil {
		return nil, err
	}
	var leave *engine.LeaveReport
	if l, err := s.Leaves.FindOn(ctx, u.ID, today); err == nil {
		v := l.ToEngine()
		leave = &v
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	view := &dto.TodayView{Role: actor.Role(), Date: today}
	switch a := actor.(type) {
	case constants.AdminActor:
		return nil, ErrAdminCannotScan
	case constants.StaffActor:
		st := engine.ResolveDailyStatus(engine.DailyInput{
			PersonID:        u.ID.String(),
			Date:            today,
			Scans:           model.ToEngineScans(scans),
			Leave:           leave,
			FineRatePerLate: s.Settings.FinePerLate,
			Now:             now,
		})
		view.Daily = &st
	case constants.TeacherActor, constants.CoachActor:
		code := constants.ScheduleCodeOf(a)
		if code == "" {
			view.Lessons = []engine.ReportRow{}
			return view, nil
		}
		entries, err := s.Schedules.Mine(ctx, code)
		if err != nil {
			return nil, err
		}
		in := engine.ReportInput{
			From:     today,
			To:       today,
			Schedule: scheduleModel.ToEngineEntries(entries),
			People:   []engine.Person{{ID: u.ID.String(), DisplayName: u.FullName, ScheduleCode: code}},
			Scans:    model.ToEngineScans(scans),
			Now:      now,
		}
		if leave != nil {
			in.Leaves = []engine.LeaveReport{*leave}
		}
		view.Lessons = engine.BuildComprehensiveReport(in)
	}
	return view, nil
}

// History: scan milik sendiri dalam rentang tanggal.
func (s *ScanService) History(ctx context.Context, userID uuid.UUID, from, to engine.Date) ([]model.ScanEventModel, error) {
	if to.Before(from) {
		from, to = to, from
	}
	return s.Scans.ListByUserRange(ctx, userID, from, to)
}
