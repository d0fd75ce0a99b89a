package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() ReportInput {
	return ReportInput{
		From: Date{2024, time.January, 1},
		To:   Date{2024, time.January, 7},
		Schedule: []MasterScheduleEntry{
			{ID: "mtk", ScheduleCode: "G01", PersonDisplayName: "Bu Sari", Subject: "Matematika", DayOfWeek: time.Monday, TimeRange: "08:00 - 08:40", ClassName: "X-1", PeriodIndex: 2},
			{ID: "ipa", ScheduleCode: "G01", PersonDisplayName: "Bu Sari", Subject: "IPA", DayOfWeek: time.Monday, TimeRange: "07:15 - 07:55", ClassName: "X-2", PeriodIndex: 1},
			{ID: "bind", ScheduleCode: "G02", PersonDisplayName: "Pak Adi", Subject: "B. Indonesia", DayOfWeek: time.Monday, TimeRange: "08:00 - 08:40", ClassName: "X-2", PeriodIndex: 2},
			{ID: "pramuka", ScheduleCode: "P01", PersonDisplayName: "Kak Rudi", Subject: "Pramuka", DayOfWeek: time.Friday, TimeRange: "14:00 - 16:00", ClassName: "Eskul", PeriodIndex: 1},
			{ID: "orphan", ScheduleCode: "ZZZ", PersonDisplayName: "Tanpa Akun", Subject: "Seni", DayOfWeek: time.Tuesday, TimeRange: "09:00 - 09:40", ClassName: "X-1", PeriodIndex: 3},
		},
		People: []Person{
			{ID: "sari", DisplayName: "Sari", ScheduleCode: "G01"},
			{ID: "adi", DisplayName: "Adi", ScheduleCode: "G02"},
			{ID: "rudi", DisplayName: "Rudi", ScheduleCode: "P01"},
			{ID: "tendik", DisplayName: "Tono"},
		},
	}
}

func TestBuildComprehensiveReport_LessonScenario(t *testing.T) {
	in := reportFixture()
	in.Scans = []ScanEvent{
		{PersonID: "sari", Kind: ScanCheckIn, ScheduleEntryID: "mtk", Timestamp: at(1, 8, 5, 0)},
	}

	rows := BuildComprehensiveReport(in)
	var mtk *ReportRow
	for i := range rows {
		if rows[i].ScheduleEntryID == "mtk" {
			mtk = &rows[i]
		}
	}
	require.NotNil(t, mtk)
	assert.Equal(t, StatusLate, mtk.Status)
	assert.Equal(t, 5, mtk.LatenessMinutes)
	assert.Equal(t, "08:05", mtk.ScanTime)
	assert.Equal(t, "Terlambat 5 menit", mtk.LatenessDescription)

	in.Scans = nil
	for _, r := range BuildComprehensiveReport(in) {
		if r.ScheduleEntryID == "mtk" {
			assert.Equal(t, StatusAbsent, r.Status)
			assert.Equal(t, "-", r.ScanTime)
			assert.Equal(t, "-", r.LatenessDescription)
		}
	}
}

func TestBuildComprehensiveReport_LeaveWinsOverScan(t *testing.T) {
	in := reportFixture()
	in.Scans = []ScanEvent{
		{PersonID: "sari", Kind: ScanCheckIn, ScheduleEntryID: "mtk", Timestamp: at(1, 8, 5, 0)},
	}
	in.Leaves = []LeaveReport{{PersonID: "sari", Date: Date{2024, time.January, 1}, Reason: ReasonSick, Note: "flu"}}

	for _, r := range BuildComprehensiveReport(in) {
		if r.PersonID == "sari" {
			assert.Equal(t, StatusExcused, r.Status)
			assert.Equal(t, ReasonSick, r.Reason)
			assert.Equal(t, "Sakit", r.StatusLabel())
			assert.Equal(t, "flu", r.Note)
		}
	}
}

func TestBuildComprehensiveReport_LeaveExcusesWholeDay(t *testing.T) {
	in := reportFixture()
	// izin untuk jam ke-1 saja, tapi jam ke-2 sempat scan telat
	in.Scans = []ScanEvent{
		{PersonID: "sari", Kind: ScanCheckIn, ScheduleEntryID: "mtk", Timestamp: at(1, 8, 5, 0)},
	}
	in.Leaves = []LeaveReport{{PersonID: "sari", Date: Date{2024, time.January, 1}, Reason: ReasonSick, Note: "demam", AffectedPeriods: []int{1}}}

	var sari []ReportRow
	for _, r := range BuildComprehensiveReport(in) {
		if r.PersonID == "sari" {
			sari = append(sari, r)
		}
	}
	require.Len(t, sari, 2)
	for _, r := range sari {
		assert.Equal(t, StatusExcused, r.Status, r.ScheduleEntryID)
		assert.Equal(t, 0, r.LatenessMinutes)
		assert.Equal(t, "demam (jam ke-1)", r.Note)
	}
}

func TestLeaveReport_PeriodsNote(t *testing.T) {
	assert.Equal(t, "", LeaveReport{}.PeriodsNote())
	assert.Equal(t, "jam ke-1, 3", LeaveReport{AffectedPeriods: []int{1, 3}}.PeriodsNote())
}

func TestBuildComprehensiveReport_SizeAndOrder(t *testing.T) {
	in := reportFixture()
	rows := BuildComprehensiveReport(in)

	// Senin: 3 jadwal, Jumat: 1 jadwal; jadwal ZZZ tidak punya akun → dilewati.
	require.Len(t, rows, 4)

	assert.Equal(t, "ipa", rows[0].ScheduleEntryID)
	// jam ke-2 sama → urut nama: "Bu Sari" sebelum "Pak Adi"
	assert.Equal(t, "mtk", rows[1].ScheduleEntryID)
	assert.Equal(t, "bind", rows[2].ScheduleEntryID)
	assert.Equal(t, "pramuka", rows[3].ScheduleEntryID)

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Date == cur.Date && prev.PeriodIndex == cur.PeriodIndex {
			assert.LessOrEqual(t, prev.PersonDisplayName, cur.PersonDisplayName)
		}
	}
}

func TestBuildComprehensiveReport_TwoWeeks(t *testing.T) {
	in := reportFixture()
	in.To = Date{2024, time.January, 14}
	assert.Len(t, BuildComprehensiveReport(in), 8)
}

func TestBuildComprehensiveReport_Filters(t *testing.T) {
	in := reportFixture()
	in.Filter = Filter{PersonIDs: []string{"sari"}}
	rows := BuildComprehensiveReport(in)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "sari", r.PersonID)
	}

	in.Filter = Filter{ClassName: "x-2"}
	rows = BuildComprehensiveReport(in)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "X-2", r.ClassName)
	}
}

func TestBuildComprehensiveReport_MalformedTimeRangeIsPresent(t *testing.T) {
	in := reportFixture()
	in.Schedule[0].TimeRange = "jam ke-2"
	in.Scans = []ScanEvent{{PersonID: "sari", Kind: ScanCheckIn, ScheduleEntryID: "mtk", Timestamp: at(1, 9, 0, 0)}}

	for _, r := range BuildComprehensiveReport(in) {
		if r.ScheduleEntryID == "mtk" {
			assert.Equal(t, StatusPresent, r.Status)
			assert.Zero(t, r.LatenessMinutes)
			assert.Equal(t, "09:00", r.ScanTime)
		}
	}
}

func TestBuildComprehensiveReport_PendingWhenNowGiven(t *testing.T) {
	in := reportFixture()
	in.To = in.From
	in.Now = at(1, 7, 50, 0)

	got := map[string]Status{}
	for _, r := range BuildComprehensiveReport(in) {
		got[r.ScheduleEntryID] = r.Status
	}
	assert.Equal(t, StatusAbsent, got["ipa"])
	assert.Equal(t, StatusPending, got["mtk"])
}

func TestBuildComprehensiveReport_EmptyRange(t *testing.T) {
	in := reportFixture()
	in.From, in.To = in.To, in.From
	assert.Empty(t, BuildComprehensiveReport(in))
}

func TestCountByStatus(t *testing.T) {
	in := reportFixture()
	in.Scans = []ScanEvent{{PersonID: "sari", Kind: ScanCheckIn, ScheduleEntryID: "mtk", Timestamp: at(1, 7, 59, 0)}}
	counts := CountByStatus(BuildComprehensiveReport(in))
	assert.Equal(t, 1, counts[StatusOnTime])
	assert.Equal(t, 3, counts[StatusAbsent])
}
