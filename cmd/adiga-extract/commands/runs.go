package commands

import (
	"errors"
	"os"
	"time"

	"adiga-extract/internal/archive"
	"adiga-extract/internal/archive/db"
	"adiga-extract/internal/report"
	"adiga-extract/lib/serviceutil"
	"adiga-extract/lib/sqliteutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var runsDb *string

func init() {
	runsDb = runsCmd.Flags().String("db", "", "the archive database to read")
	rootCmd.AddCommand(runsCmd)
}

var runsCmd = &cobra.Command{
	Use:   "runs --db <archive.db> [run-id]",
	Short: "List archived extraction runs, or summarize one run.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if *runsDb == "" {
			serviceutil.Fatal("failed to open archive db", errors.New("no database specified, pass --db"))
		}

		database, err := sqliteutil.OpenDB(db.Schema, *runsDb)
		if err != nil {
			serviceutil.Fatal("failed to open archive db", err)
		}
		defer database.Close()
		store := archive.NewStore(database)

		if len(args) == 1 {
			records, err := store.Records(ctx, args[0])
			if err != nil {
				serviceutil.Fatal("failed to read archived run", err)
			}
			report.RenderSummary(os.Stdout, report.Summarize(records))
			return
		}

		runs, err := store.Runs(ctx)
		if err != nil {
			serviceutil.Fatal("failed to list archived runs", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"run", "source", "created", "records"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.ID,
				run.Source,
				run.CreatedAt.Format(time.DateTime),
				run.Records,
			})
		}
		t.Render()
	},
}
