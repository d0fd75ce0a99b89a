package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/schedules/dto"
	"hadirku_backend/internals/features/schedules/model"
)

var (
	ErrNoSheet        = errors.New("file Excel tidak memiliki sheet")
	ErrMissingColumns = errors.New("header wajib tidak lengkap")
)

type column int

const (
	colCode column = iota
	colName
	colSubject
	colDay
	colTime
	colClass
	colPeriod
)

var headerAliases = map[string]column{
	"kode":           colCode,
	"kode jadwal":    colCode,
	"code":           colCode,
	"nama":           colName,
	"nama guru":      colName,
	"name":           colName,
	"mapel/eskul":    colSubject,
	"mapel / eskul":  colSubject,
	"mapel":          colSubject,
	"eskul":          colSubject,
	"mata pelajaran": colSubject,
	"subject":        colSubject,
	"hari":           colDay,
	"day":            colDay,
	"jam":            colTime,
	"waktu":          colTime,
	"time":           colTime,
	"kelas":          colClass,
	"class":          colClass,
	"jam ke":         colPeriod,
	"jam ke-":        colPeriod,
	"period":         colPeriod,
}

var requiredColumns = []column{colCode, colName, colDay, colTime}

// clean: NFC + trim + rapatkan spasi ganda.
func clean(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// ParseWorkbook membaca sheet pertama. Baris yang tidak valid dilaporkan
// dengan nomor barisnya (1-based, sesuai tampilan Excel) dan dilewati.
func ParseWorkbook(r io.Reader) ([]model.MasterScheduleModel, []dto.RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("gagal membaca file Excel: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, ErrNoSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("gagal membaca baris: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrMissingColumns
	}

	index := map[column]int{}
	for i, h := range rows[0] {
		if c, ok := headerAliases[strings.ToLower(clean(h))]; ok {
			if _, dup := index[c]; !dup {
				index[c] = i
			}
		}
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, nil, ErrMissingColumns
		}
	}

	cell := func(row []string, c column) string {
		i, ok := index[c]
		if !ok || i >= len(row) {
			return ""
		}
		return clean(row[i])
	}

	var (
		out  []model.MasterScheduleModel
		errs []dto.RowError
	)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowNo := i + 1

		blank := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		m, msg := parseRow(func(c column) string { return cell(row, c) })
		if msg != "" {
			errs = append(errs, dto.RowError{Row: rowNo, Message: msg})
			continue
		}
		out = append(out, m)
	}
	return out, errs, nil
}

func parseRow(get func(column) string) (model.MasterScheduleModel, string) {
	code := strings.ToUpper(get(colCode))
	if code == "" {
		return model.MasterScheduleModel{}, "kode jadwal kosong"
	}
	if len(code) > 30 {
		return model.MasterScheduleModel{}, "kode jadwal terlalu panjang (maks 30)"
	}
	name := get(colName)
	if name == "" {
		return model.MasterScheduleModel{}, "nama kosong"
	}
	dayRaw := get(colDay)
	day, ok := engine.ParseWeekday(dayRaw)
	if !ok {
		return model.MasterScheduleModel{}, fmt.Sprintf("hari '%s' tidak dikenal", dayRaw)
	}
	timeRange := get(colTime)
	if timeRange == "" {
		return model.MasterScheduleModel{}, "jam kosong"
	}
	// Rentang yang bisa dibaca disimpan dalam bentuk baku; sisanya apa adanya.
	if tr, err := engine.ParseTimeRange(timeRange); err == nil {
		timeRange = tr.String()
	}

	period := 0
	if raw := get(colPeriod); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return model.MasterScheduleModel{}, fmt.Sprintf("jam ke '%s' bukan angka", raw)
		}
		period = n
	}

	return model.MasterScheduleModel{
		ScheduleCode:      code,
		PersonDisplayName: name,
		Subject:           get(colSubject),
		DayOfWeek:         int(day),
		TimeRange:         timeRange,
		ClassName:         get(colClass),
		PeriodIndex:       period,
	}, ""
}
