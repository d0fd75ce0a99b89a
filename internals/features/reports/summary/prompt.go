package summary

import (
	"fmt"
	"sort"
	"strings"

	"hadirku_backend/internals/features/attendance/engine"
)

const systemPrompt = "Anda asisten tata usaha sekolah. Tulis ringkasan presensi singkat (maksimal 5 kalimat) " +
	"dalam Bahasa Indonesia yang sopan. Sebutkan pola penting dan saran tindak lanjut. Jangan mengarang angka."

// Stats: agregat yang dikirim ke model; tidak berisi data pribadi selain nama.
type Stats struct {
	From         engine.Date
	To           engine.Date
	Counts       map[engine.Status]int
	TopLate      []NameCount
	TotalFine    int64
	StaffCovered int
}

type NameCount struct {
	Name  string
	Count int
}

func BuildMessages(s Stats) []Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Periode %s s/d %s.\n", s.From, s.To)

	statuses := make([]engine.Status, 0, len(s.Counts))
	for st := range s.Counts {
		statuses = append(statuses, st)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	b.WriteString("Jumlah per status:\n")
	for _, st := range statuses {
		fmt.Fprintf(&b, "- %s: %d\n", st.Label(), s.Counts[st])
	}
	if len(s.TopLate) > 0 {
		b.WriteString("Paling sering terlambat:\n")
		for _, nc := range s.TopLate {
			fmt.Fprintf(&b, "- %s: %d kali\n", nc.Name, nc.Count)
		}
	}
	if s.StaffCovered > 0 {
		fmt.Fprintf(&b, "Tendik tercakup: %d orang, total denda Rp%d.\n", s.StaffCovered, s.TotalFine)
	}
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}
