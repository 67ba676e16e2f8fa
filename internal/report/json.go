// Package report renders extraction results as JSON and CSV files and
// as a console summary.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"adiga-extract/lib/scrapers/adiga"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("internal/report")

// WriteJSON writes records to path as a two-space indented array.
// Hangul stays readable, neither html nor non-ascii escaping is
// applied.
func WriteJSON(ctx context.Context, path string, records []adiga.Record) error {
	_, span := tracer.Start(ctx, "report:WriteJSON")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	if records == nil {
		records = []adiga.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	err = os.WriteFile(path, buf.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
