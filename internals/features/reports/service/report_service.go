package service

import (
	"context"
	"errors"
	"sort"
	"time"

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

// Rentang laporan maksimal (inklusif).
const MaxRangeDays = 92

var (
	ErrInvalidRange = errors.New("tanggal 'from' harus sebelum atau sama dengan 'to'")
	ErrRangeTooLong = errors.New("rentang laporan maksimal 92 hari")
)

type ScheduleLister interface {
	List(ctx context.Context, f scheduleRepo.ListFilter) ([]scheduleModel.MasterScheduleModel, error)
}

type UserLister interface {
	ListScheduled(ctx context.Context) ([]userModel.UserModel, error)
	ListByRole(ctx context.Context, role string) ([]userModel.UserModel, error)
}

type ScanLister interface {
	ListRange(ctx context.Context, from, to engine.Date) ([]scanModel.ScanEventModel, error)
}

type LeaveLister interface {
	ListRange(ctx context.Context, from, to engine.Date) ([]leaveModel.LeaveReportModel, error)
}

type Summarizer interface {
	Complete(ctx context.Context, messages []summary.Message) (string, error)
}

type ReportService struct {
	Schedules  ScheduleLister
	Users      UserLister
	Scans      ScanLister
	Leaves     LeaveLister
	Summarizer Summarizer // boleh nil
	Settings   configs.AttendanceSettings
	Log        *zap.Logger
	Now        func() time.Time
}

func NewReportService(schedules ScheduleLister, users UserLister, scans ScanLister, leaves LeaveLister, summarizer Summarizer, settings configs.AttendanceSettings, log *zap.Logger) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{
		Schedules: schedules, Users: users, Scans: scans, Leaves: leaves,
		Summarizer: summarizer, Settings: settings, Log: log, Now: dbtime.NowInSchool,
	}
}

func ValidateRange(from, to engine.Date) error {
	if to.Before(from) {
		return ErrInvalidRange
	}
	if from.AddDays(MaxRangeDays - 1).Before(to) {
		return ErrRangeTooLong
	}
	return nil
}

// Comprehensive: join jadwal × tanggal untuk guru/pembina.
func (s *ReportService) Comprehensive(ctx context.Context, q dto.ReportQuery) ([]engine.ReportRow, error) {
	if err := ValidateRange(q.From, q.To); err != nil {
		return nil, err
	}
	entries, err := s.Schedules.List(ctx, scheduleRepo.ListFilter{})
	if err != nil {
		return nil, err
	}
	users, err := s.Users.ListScheduled(ctx)
	if err != nil {
		return nil, err
	}
	scans, err := s.Scans.ListRange(ctx, q.From, q.To)
	if err != nil {
		return nil, err
	}
	leaves, err := s.Leaves.ListRange(ctx, q.From, q.To)
	if err != nil {
		return nil, err
	}

	people := make([]engine.Person, 0, len(users))
	for _, u := range users {
		if u.Role != constants.RoleTeacher && u.Role != constants.RoleCoach {
			continue
		}
		people = append(people, engine.Person{ID: u.ID.String(), DisplayName: u.FullName, ScheduleCode: u.ScheduleCodeValue()})
	}

	rows := engine.BuildComprehensiveReport(engine.ReportInput{
		From:     q.From,
		To:       q.To,
		Schedule: scheduleModel.ToEngineEntries(entries),
		People:   people,
		Scans:    scanModel.ToEngineScans(scans),
		Leaves:   leaveModel.ToEngineLeaves(leaves),
		Filter:   engine.Filter{PersonIDs: q.PersonIDs, ClassName: q.ClassName},
		Now:      s.Now(),
	})
	s.Log.Debug("comprehensive report built",
		zap.String("from", q.From.String()), zap.String("to", q.To.String()), zap.Int("rows", len(rows)))
	return rows, nil
}

// StaffRecap: status harian tiap tendik × tanggal, plus total per orang.
func (s *ReportService) StaffRecap(ctx context.Context, q dto.ReportQuery) (*dto.StaffRecap, error) {
	if err := ValidateRange(q.From, q.To); err != nil {
		return nil, err
	}
	staff, err := s.Users.ListByRole(ctx, constants.RoleStaff)
	if err != nil {
		return nil, err
	}
	scans, err := s.Scans.ListRange(ctx, q.From, q.To)
	if err != nil {
		return nil, err
	}
	leaves, err := s.Leaves.ListRange(ctx, q.From, q.To)
	if err != nil {
		return nil, err
	}

	only := map[string]bool{}
	for _, id := range q.PersonIDs {
		only[id] = true
	}

	scansByPerson := map[string][]engine.ScanEvent{}
	for _, e := range scanModel.ToEngineScans(scans) {
		scansByPerson[e.PersonID] = append(scansByPerson[e.PersonID], e)
	}
	type key struct {
		person string
		date   engine.Date
	}
	leaveOf := map[key]engine.LeaveReport{}
	for _, l := range leaveModel.ToEngineLeaves(leaves) {
		leaveOf[key{l.PersonID, l.Date}] = l
	}

	now := s.Now()
	today := engine.DateOf(now)
	out := &dto.StaffRecap{From: q.From, To: q.To, Days: []dto.StaffDay{}, Totals: []dto.StaffTotal{}}
	for _, u := range staff {
		id := u.ID.String()
		if len(only) > 0 && !only[id] {
			continue
		}
		total := dto.StaffTotal{PersonID: id, PersonName: u.FullName}
		for d := q.From; !d.After(q.To); d = d.AddDays(1) {
			if today.Before(d) {
				break
			}
			in := engine.DailyInput{
				PersonID:        id,
				Date:            d,
				Scans:           scansByPerson[id],
				FineRatePerLate: s.Settings.FinePerLate,
				Now:             now,
			}
			if l, ok := leaveOf[key{id, d}]; ok {
				in.Leave = &l
			}
			st := engine.ResolveDailyStatus(in)
			if st.Status == engine.StatusOff {
				continue
			}
			out.Days = append(out.Days, dto.StaffDay{PersonName: u.FullName, DailyStatus: st})
			accumulate(&total, st)
		}
		out.Totals = append(out.Totals, total)
	}
	sort.SliceStable(out.Days, func(i, j int) bool {
		if out.Days[i].Date != out.Days[j].Date {
			return out.Days[i].Date.Before(out.Days[j].Date)
		}
		return out.Days[i].PersonName < out.Days[j].PersonName
	})
	return out, nil
}

func accumulate(t *dto.StaffTotal, st engine.DailyStatus) {
	switch st.Status {
	case engine.StatusOnTime:
		t.OnTime++
	case engine.StatusLate:
		t.Late++
	case engine.StatusExcused:
		t.Excused++
	case engine.StatusAbsent:
		t.Absent++
	case engine.StatusCheckedOut:
		if st.Late {
			t.Late++
		} else {
			t.OnTime++
		}
	}
	if st.Overtime {
		t.Overtime++
	}
	t.LateMinute += st.LatenessMinutes
	t.TotalFine += st.FineAmount
}

// Summary: agregat laporan → ringkasan naratif dari model bahasa.
func (s *ReportService) Summary(ctx context.Context, from, to engine.Date) (*dto.SummaryResponse, error) {
	if s.Summarizer == nil {
		return nil, summary.ErrNotConfigured
	}
	rows, err := s.Comprehensive(ctx, dto.ReportQuery{From: from, To: to})
	if err != nil {
		return nil, err
	}
	recap, err := s.StaffRecap(ctx, dto.ReportQuery{From: from, To: to})
	if err != nil {
		return nil, err
	}

	counts := engine.CountByStatus(rows)
	lateBy := map[string]int{}
	for _, r := range rows {
		if r.Status == engine.StatusLate {
			lateBy[r.PersonDisplayName]++
		}
	}
	stats := summary.Stats{From: from, To: to, Counts: counts, StaffCovered: len(recap.Totals)}
	for _, d := range recap.Days {
		counts[d.Status]++
	}
	for _, t := range recap.Totals {
		stats.TotalFine += t.TotalFine
		if t.Late > 0 {
			lateBy[t.PersonName] += t.Late
		}
	}
	stats.TopLate = topN(lateBy, 5)

	text, err := s.Summarizer.Complete(ctx, summary.BuildMessages(stats))
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{From: from, To: to, Counts: counts, Text: text, GeneratedAt: s.Now()}, nil
}

func topN(m map[string]int, n int) []summary.NameCount {
	out := make([]summary.NameCount, 0, len(m))
	for name, c := range m {
		out = append(out, summary.NameCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
