package export

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 10.0
	rowHeight  = 6.0
)

// ToPDF: A4 landscape, header berwarna yang diulang di tiap halaman.
func ToPDF(t Table, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	widths := scaleWidths(columnWidths(t), pageW-2*pageMargin)

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(40, 145, 108)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range t.Headers {
			pdf.CellFormat(widths[i], rowHeight+1, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 8)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	sub := generatedAt(now)
	if t.Subtitle != "" {
		sub = t.Subtitle + " | " + sub
	}
	pdf.CellFormat(0, 5, tr(sub), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	if len(t.Headers) > 0 {
		header()
	}
	_, pageH := pdf.GetPageSize()
	for ri, row := range t.Rows {
		if pdf.GetY()+rowHeight > pageH-pageMargin {
			pdf.AddPage()
			header()
		}
		fill := ri%2 == 1
		pdf.SetFillColor(240, 247, 244)
		for i := range t.Headers {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			pdf.CellFormat(widths[i], rowHeight, tr(truncate(pdf, v, widths[i])), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaleWidths(ws []float64, total float64) []float64 {
	sum := 0.0
	for _, w := range ws {
		sum += w
	}
	out := make([]float64, len(ws))
	if sum == 0 {
		return out
	}
	for i, w := range ws {
		out[i] = w / sum * total
	}
	return out
}

// truncate memotong teks yang lebih lebar dari sel.
func truncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
