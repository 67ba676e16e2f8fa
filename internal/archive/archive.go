// Package archive keeps a history of extraction runs in sqlite so
// results from different response files can be compared later.
package archive

import (
	"context"
	"database/sql"
	"time"

	"adiga-extract/lib/scrapers/adiga"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("internal/archive")

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

type Run struct {
	ID        string
	Source    string
	CreatedAt time.Time
	Records   int
}

// Push stores one extraction run and returns its id.
func (s Store) Push(ctx context.Context, source string, records []adiga.Record) (string, error) {
	ctx, span := tracer.Start(ctx, "Push")
	defer span.End()
	span.SetAttributes(
		attribute.String("source", source),
		attribute.Int("records", len(records)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	defer tx.Rollback()

	runID := uuid.New().String()
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO extraction_runs (id, source, created_at) VALUES (?, ?, ?)`,
		runID, source, time.Now().Unix(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	for i, r := range records {
		var rate sql.NullFloat64
		if r.CompetitionRate != nil {
			rate = sql.NullFloat64{Float64: *r.CompetitionRate, Valid: true}
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO admission_records (
				run_id, ordinal, year, admission_type, department, quota,
				competition_rate, waitlist_rank, cut_50, cut_70, subjects
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, r.Year, r.AdmissionType, r.Department, r.Quota,
			rate, r.WaitlistRank, r.Cut50, r.Cut70, r.Subjects,
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return "", err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return runID, nil
}

// Runs lists stored runs, newest first.
func (s Store) Runs(ctx context.Context) ([]Run, error) {
	ctx, span := tracer.Start(ctx, "Runs")
	defer span.End()

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.source, r.created_at, COUNT(a.run_id)
		FROM extraction_runs r
		LEFT JOIN admission_records a ON a.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.id`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		err = rows.Scan(&run.ID, &run.Source, &createdAt, &run.Records)
		if err != nil {
			return nil, err
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Records returns the rows stored for one run in extraction order.
func (s Store) Records(ctx context.Context, runID string) ([]adiga.Record, error) {
	ctx, span := tracer.Start(ctx, "Records")
	defer span.End()
	span.SetAttributes(attribute.String("run", runID))

	rows, err := s.db.QueryContext(ctx, `
		SELECT year, admission_type, department, quota,
			competition_rate, waitlist_rank, cut_50, cut_70, subjects
		FROM admission_records
		WHERE run_id = ?
		ORDER BY ordinal`, runID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer rows.Close()

	var records []adiga.Record
	for rows.Next() {
		var r adiga.Record
		var rate sql.NullFloat64
		err = rows.Scan(
			&r.Year, &r.AdmissionType, &r.Department, &r.Quota,
			&rate, &r.WaitlistRank, &r.Cut50, &r.Cut70, &r.Subjects,
		)
		if err != nil {
			return nil, err
		}
		if rate.Valid {
			r.CompetitionRate = &rate.Float64
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
