package service

import (
	"fmt"
	"strconv"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/reports/dto"
	"hadirku_backend/internals/features/reports/export"
)

func rangeLabel(from, to engine.Date) string {
	return fmt.Sprintf("Periode %s s/d %s", from, to)
}

func ComprehensiveTable(rows []engine.ReportRow, from, to engine.Date) export.Table {
	t := export.Table{
		Title:    "Laporan Presensi Guru & Pembina",
		Subtitle: rangeLabel(from, to),
		Headers:  []string{"No", "Tanggal", "Hari", "Jam Ke", "Jam", "Nama", "Kode", "Kelas", "Mapel/Eskul", "Status", "Jam Scan", "Keterlambatan", "Keterangan"},
		Widths:   []float64{5, 12, 9, 7, 14, 24, 8, 9, 20, 13, 9, 18, 22},
	}
	for i, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			r.Date.String(),
			engine.HariName(r.Date.Weekday()),
			strconv.Itoa(r.PeriodIndex),
			r.TimeRange,
			r.PersonDisplayName,
			r.ScheduleCode,
			r.ClassName,
			r.Subject,
			r.StatusLabel(),
			r.ScanTime,
			r.LatenessDescription,
			r.Note,
		})
	}
	return t
}

func clock(d engine.DailyStatus, in bool) string {
	p := d.CheckOutAt
	if in {
		p = d.CheckInAt
	}
	if p == nil {
		return "-"
	}
	return p.Format("15:04")
}

func StaffTable(recap *dto.StaffRecap) export.Table {
	t := export.Table{
		Title:    "Rekap Presensi Tendik",
		Subtitle: rangeLabel(recap.From, recap.To),
		Headers:  []string{"No", "Tanggal", "Hari", "Nama", "Status", "Masuk", "Pulang", "Terlambat (menit)", "Denda", "Keterangan"},
		Widths:   []float64{5, 12, 9, 26, 13, 8, 8, 10, 12, 24},
	}
	for i, d := range recap.Days {
		label := d.Status.Label()
		if d.Status == engine.StatusExcused && d.Reason != "" {
			label = d.Reason.Label()
		}
		note := d.Note
		if note == "" {
			note = "-"
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			d.Date.String(),
			engine.HariName(d.Date.Weekday()),
			d.PersonName,
			label,
			clock(d.DailyStatus, true),
			clock(d.DailyStatus, false),
			strconv.Itoa(d.LatenessMinutes),
			rupiah(d.FineAmount),
			note,
		})
	}
	for _, tot := range recap.Totals {
		t.Rows = append(t.Rows, []string{
			"", "", "TOTAL", tot.PersonName,
			fmt.Sprintf("%d tepat / %d telat / %d izin / %d alpa", tot.OnTime, tot.Late, tot.Excused, tot.Absent),
			"", "", strconv.Itoa(tot.LateMinute), rupiah(tot.TotalFine), "",
		})
	}
	return t
}

// rupiah: 12500 → "Rp12.500"
func rupiah(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg, s = true, s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-Rp" + string(out)
	}
	return "Rp" + string(out)
}
