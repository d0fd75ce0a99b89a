// Package export merender tabel laporan ke Excel dan PDF.
package export

import (
	"fmt"
	"time"
)

// Table: bentuk netral yang dipakai kedua renderer.
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
	// Widths opsional (satuan karakter Excel); kosong = dihitung dari isi.
	Widths []float64
}

// Filename: "<prefix>_<from>_<to>.<ext>"
func Filename(prefix, from, to, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, from, to, ext)
}

func generatedAt(now time.Time) string {
	return "Dicetak " + now.Format("02-01-2006 15:04")
}

// columnWidths: lebar per kolom berdasarkan teks terpanjang (batas 8..48).
func columnWidths(t Table) []float64 {
	out := make([]float64, len(t.Headers))
	for i, h := range t.Headers {
		if i < len(t.Widths) && t.Widths[i] > 0 {
			out[i] = t.Widths[i]
			continue
		}
		max := len([]rune(h))
		for _, r := range t.Rows {
			if i < len(r) {
				if n := len([]rune(r[i])); n > max {
					max = n
				}
			}
		}
		w := float64(max) + 2
		if w < 8 {
			w = 8
		}
		if w > 48 {
			w = 48
		}
		out[i] = w
	}
	return out
}
