// Package adiga extracts admission statistics tables out of result
// pages saved from the adiga.kr admissions portal. The portal renders
// each 전형 as a run of table rows where the academic year and the
// admission track only appear once as marker rows, so the extractor
// scans the document in order and carries that context onto every
// department row below it.
package adiga

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"adiga-extract/lib/textutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("scrapers/adiga")

var (
	// year marker rows inside a table, e.g. "[2024학년도]"
	yearRowRegex = regexp.MustCompile(`\[(\d{4})학년도\]`)
	// looser year announcements in paragraphs between tables,
	// e.g. "2024 학년도" or "[2024] 학년도". Go's \s is ASCII only, the
	// class adds the separator runes Korean IMEs type, U+3000 included.
	yearAnnounceRegex = regexp.MustCompile(`\[?(\d{4})\]?[\s\p{Z}\x{0085}]*학년도`)
)

// admission track marker, e.g. "수시 지역균형전형"
const admissionTypeMarker = "전형"

// column labels that identify a header row
var headerKeywords = []string{
	"모집단위",
	"모집인원",
	"경쟁률",
	"충원",
	"cut",
	"교과목",
	"50%",
	"70%",
}

// footnote rows the portal appends under some tables
var warningMarkers = []string{
	"※",
	"대학별",
	"비교할 수 없습니다",
}

// AcademicYear pulls the 4-digit year out of a 학년도 announcement.
func AcademicYear(text string) (string, bool) {
	m := yearAnnounceRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Extractor scans one document at a time and accumulates the
// department rows it finds. Instances aren't safe for concurrent use,
// parse independent documents with independent extractors.
type Extractor struct {
	records []Record

	// carried context, marker rows update these and department rows
	// read them
	year          string
	admissionType string

	inTable bool
	inTbody bool
	inRow   bool
	inCell  bool
	inSpan  bool
	inP     bool

	row        []string
	cell       strings.Builder
	paragraph  strings.Builder
	rowIndex   int
	headerRows int
	// the portal shades header cells, recorded per cell but rows are
	// classified by keywords because the shading shows up on merged
	// data cells too
	headerCell bool
}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs a one-shot extraction over a complete, already decoded
// document.
func Extract(ctx context.Context, markup string) []Record {
	e := NewExtractor()
	e.Parse(ctx, markup)
	return e.Records()
}

// Records returns the rows accumulated so far, in document order.
func (e *Extractor) Records() []Record {
	return e.records
}

// Parse scans markup and appends every department row it can classify.
// Malformed markup never fails the scan, unknown tags and stray text
// fall through untouched and broken rows are dropped.
func (e *Extractor) Parse(ctx context.Context, markup string) {
	ctx, span := tracer.Start(ctx, "extractor:Parse")
	defer span.End()

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			span.SetAttributes(attribute.Int("records", len(e.records)))
			return
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			e.openTag(string(name), styleAttr(z, hasAttr))
		case html.EndTagToken:
			name, _ := z.TagName()
			e.closeTag(ctx, string(name))
		case html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			e.openTag(tag, styleAttr(z, hasAttr))
			e.closeTag(ctx, tag)
		case html.TextToken:
			e.text(string(z.Text()))
		}
	}
}

func styleAttr(z *html.Tokenizer, hasAttr bool) string {
	style := ""
	for hasAttr {
		key, val, more := z.TagAttr()
		if string(key) == "style" {
			style = string(val)
		}
		hasAttr = more
	}
	return style
}

func (e *Extractor) openTag(tag, style string) {
	switch tag {
	case "table":
		e.inTable = true
		e.rowIndex = 0
		e.headerRows = 0
	case "tbody":
		e.inTbody = true
	case "tr":
		e.inRow = true
		e.row = e.row[:0]
		e.cell.Reset()
	case "td":
		if !e.inRow {
			return
		}
		e.inCell = true
		e.cell.Reset()
		e.headerCell = strings.Contains(style, "rgb(229, 229, 229)") ||
			strings.Contains(style, "background:")
	case "span":
		if e.inCell {
			e.inSpan = true
		}
	case "p":
		e.inP = true
		e.paragraph.Reset()
	}
}

func (e *Extractor) closeTag(ctx context.Context, tag string) {
	switch tag {
	case "table":
		e.inTable = false
	case "tbody":
		e.inTbody = false
	case "tr":
		if !e.inRow {
			return
		}
		e.inRow = false
		e.classifyRow(ctx)
		e.rowIndex++
	case "td":
		if !e.inCell {
			return
		}
		e.row = append(e.row, textutil.CollapseSpace(e.cell.String()))
		e.inCell = false
		e.headerCell = false
	case "span":
		e.inSpan = false
	case "p":
		// year announcements between tables carry onto the tables
		// below, the same text inside a table never does
		if !e.inTable && e.paragraph.Len() > 0 {
			if year, ok := AcademicYear(e.paragraph.String()); ok {
				e.year = year
				slog.DebugContext(ctx, "year announcement", "year", year)
			}
		}
		e.inP = false
		e.paragraph.Reset()
	}
}

func (e *Extractor) text(data string) {
	if e.inP {
		e.paragraph.WriteString(strings.TrimSpace(data))
	}
	if !e.inCell {
		return
	}
	fragment := strings.TrimSpace(data)
	if fragment == "" || fragment == "&nbsp;" {
		return
	}
	e.cell.WriteString(fragment)
}

// classifyRow decides what the finished row is. Order matters: marker
// rows update the carried context and stop, header and footnote rows
// drop, whatever survives with enough cells is a department row.
func (e *Extractor) classifyRow(ctx context.Context) {
	if len(e.row) == 0 {
		return
	}
	span := trace.SpanFromContext(ctx)
	rowText := strings.Join(e.row, " ")

	if m := yearRowRegex.FindStringSubmatch(rowText); m != nil {
		e.year = m[1]
		span.AddEvent("year marker", trace.WithAttributes(
			attribute.String("year", e.year),
		))
		return
	}

	for _, cell := range e.row {
		if strings.Contains(cell, admissionTypeMarker) {
			e.admissionType = strings.TrimSpace(cell)
			span.AddEvent("admission type marker", trace.WithAttributes(
				attribute.String("admission_type", e.admissionType),
			))
			return
		}
	}

	for _, keyword := range headerKeywords {
		if strings.Contains(rowText, keyword) {
			e.headerRows++
			return
		}
	}
	for _, marker := range warningMarkers {
		if strings.Contains(rowText, marker) {
			return
		}
	}

	if len(e.row) < 6 {
		return
	}

	record := Record{
		Year:          e.year,
		AdmissionType: e.admissionType,
		Department:    e.row[0],
		Quota:         e.row[1],
		WaitlistRank:  e.row[3],
		Cut50:         e.row[4],
		Cut70:         e.row[5],
	}
	if rate, ok := CompetitionRate(e.row[2]); ok {
		record.CompetitionRate = &rate
	}
	if len(e.row) > 6 {
		record.Subjects = e.row[6]
	}
	if strings.TrimSpace(record.Department) == "" {
		return
	}
	e.records = append(e.records, record)
}
