package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var header = []any{"Kode", "Nama", "Mapel/Eskul", "Hari", "Jam", "Kelas", "Jam Ke"}

func TestParseWorkbook_ValidRows(t *testing.T) {
	buf := workbook(t, [][]any{
		header,
		{"g01", "Bu Sari", "Matematika", "Senin", "08:00-08:40", "X-1", "2"},
		{"P01", "Kak Rudi", "Pramuka", "Friday", "14.00 - 16.00", "Eskul", ""},
	})

	rows, errs, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 2)

	assert.Equal(t, "G01", rows[0].ScheduleCode)
	assert.Equal(t, time.Monday, rows[0].Weekday())
	assert.Equal(t, "08:00 - 08:40", rows[0].TimeRange)
	assert.Equal(t, 2, rows[0].PeriodIndex)

	assert.Equal(t, time.Friday, rows[1].Weekday())
	assert.Equal(t, "14:00 - 16:00", rows[1].TimeRange)
	assert.Zero(t, rows[1].PeriodIndex)
}

func TestParseWorkbook_InvalidRowsReported(t *testing.T) {
	buf := workbook(t, [][]any{
		header,
		{"", "Tanpa Kode", "IPA", "Senin", "07:15 - 07:55", "X-2", "1"},
		{"G02", "Pak Adi", "B. Indonesia", "Someday", "08:00 - 08:40", "X-2", "2"},
		{},
		{"G03", "Bu Ani", "Seni", "Rabu", "jam ke-3", "X-1", "tiga"},
		{"G04", "Bu Rina", "Seni", "Rabu", "jam ke-3", "X-1", "3"},
	})

	rows, errs, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// rentang jam yang tidak terbaca tetap disimpan apa adanya
	assert.Equal(t, "jam ke-3", rows[0].TimeRange)

	require.Len(t, errs, 3)
	assert.Equal(t, 2, errs[0].Row)
	assert.Equal(t, 3, errs[1].Row)
	assert.Equal(t, 5, errs[2].Row)
}

func TestParseWorkbook_MissingHeader(t *testing.T) {
	buf := workbook(t, [][]any{{"Kode", "Nama", "Mapel"}})
	_, _, err := ParseWorkbook(buf)
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestParseWorkbook_NormalizesText(t *testing.T) {
	// "e" + combining acute → "é" (NFC)
	buf := workbook(t, [][]any{
		header,
		{"G05", "Rene\u0301  Putri", "Musik", "kamis", "10:00 - 10:40", "XI-1", "4"},
	})
	rows, _, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ren\u00e9 Putri", rows[0].PersonDisplayName)
	assert.Equal(t, time.Thursday, rows[0].Weekday())
}
