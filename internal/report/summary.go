package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"adiga-extract/lib/scrapers/adiga"

	"github.com/jedib0t/go-pretty/v6/table"
)

type TypeCount struct {
	AdmissionType string
	Count         int
}

type Summary struct {
	Total int
	// year of the first record, every record usually shares it
	Year   string
	ByType []TypeCount
}

// Summarize groups records by admission type, sorted by type label.
func Summarize(records []adiga.Record) Summary {
	s := Summary{Total: len(records)}
	if len(records) > 0 {
		s.Year = records[0].Year
	}

	counts := map[string]int{}
	for _, r := range records {
		counts[r.AdmissionType]++
	}
	for admissionType, count := range counts {
		s.ByType = append(s.ByType, TypeCount{
			AdmissionType: admissionType,
			Count:         count,
		})
	}
	slices.SortFunc(s.ByType, func(a, b TypeCount) int {
		return strings.Compare(a.AdmissionType, b.AdmissionType)
	})
	return s
}

// RenderSummary prints s as a console table.
func RenderSummary(w io.Writer, s Summary) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	if s.Year != "" {
		t.SetTitle(fmt.Sprintf("%s학년도", s.Year))
	}
	t.AppendHeader(table.Row{"admission type", "records"})
	for _, tc := range s.ByType {
		label := tc.AdmissionType
		if label == "" {
			label = "(none)"
		}
		t.AppendRow(table.Row{label, tc.Count})
	}
	t.AppendFooter(table.Row{"total", s.Total})
	t.Render()
}
