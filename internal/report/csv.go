package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"adiga-extract/lib/scrapers/adiga"

	"go.opentelemetry.io/otel/attribute"
)

// utf-8 byte order mark, without it Excel renders the 한글 columns as
// mojibake
const utf8BOM = "\xEF\xBB\xBF"

var csvHeader = []string{
	"year",
	"admission_type",
	"department",
	"quota",
	"competition_rate",
	"waitlist_rank",
	"cut_50",
	"cut_70",
	"subjects",
}

// WriteCSV writes records to path as a BOM-prefixed csv. When there is
// nothing to write no file is created at all.
func WriteCSV(ctx context.Context, path string, records []adiga.Record) error {
	_, span := tracer.Start(ctx, "report:WriteCSV")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	if len(records) == 0 {
		slog.WarnContext(ctx, "no records to write, skipping csv", "path", path)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	_, err = f.WriteString(utf8BOM)
	if err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	err = w.Write(csvHeader)
	if err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, r := range records {
		rate := ""
		if r.CompetitionRate != nil {
			rate = strconv.FormatFloat(*r.CompetitionRate, 'f', -1, 64)
		}
		err = w.Write([]string{
			r.Year,
			r.AdmissionType,
			r.Department,
			r.Quota,
			rate,
			r.WaitlistRank,
			r.Cut50,
			r.Cut70,
			r.Subjects,
		})
		if err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
