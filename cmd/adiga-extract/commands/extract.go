package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"adiga-extract/internal/archive"
	"adiga-extract/internal/archive/db"
	"adiga-extract/internal/filter"
	"adiga-extract/internal/report"
	"adiga-extract/lib/configutil"
	"adiga-extract/lib/htmlutil"
	"adiga-extract/lib/scrapers/adiga"
	"adiga-extract/lib/serviceutil"
	"adiga-extract/lib/sqliteutil"

	"github.com/spf13/cobra"
)

type Config struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Csv      bool   `json:"csv"`
	Quiet    bool   `json:"quiet"`
	Encoding string `json:"encoding"`
	Database string `json:"database"`
}

var (
	extractCsv        *bool
	extractDb         *string
	extractDepartment *string
)

func init() {
	extractCsv = extractCmd.Flags().Bool("csv", false, "also write a csv next to the json output")
	extractDb = extractCmd.Flags().String("db", "", "archive the run into this sqlite database or libsql url")
	extractDepartment = extractCmd.Flags().String("department", "", "keep only departments matching this name")
	rootCmd.AddCommand(extractCmd)
}

// readConfig merges config.json5 (when present) into the built-in
// defaults. Flags still win over both.
func readConfig() Config {
	cfg := Config{
		Input:    "adiga_response.html",
		Output:   "adiga_extracted.json",
		Encoding: "auto",
	}

	fileCfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		if !os.IsNotExist(err) {
			serviceutil.Fatal("failed to read config", err)
		}
		return cfg
	}

	if fileCfg.Input != "" {
		cfg.Input = fileCfg.Input
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if fileCfg.Encoding != "" {
		cfg.Encoding = fileCfg.Encoding
	}
	cfg.Csv = fileCfg.Csv
	cfg.Quiet = fileCfg.Quiet
	cfg.Database = fileCfg.Database
	return cfg
}

var extractCmd = &cobra.Command{
	Use:   "extract [input.html] [output.json|output.csv]",
	Short: "Extract admission records from a saved portal response.",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := readConfig()

		input := cfg.Input
		output := cfg.Output
		if len(args) > 0 {
			input = args[0]
		}
		if len(args) > 1 {
			output = args[1]
		}
		if !cmd.Flags().Changed("csv") {
			*extractCsv = cfg.Csv
		}
		if !cmd.Flags().Changed("db") {
			*extractDb = cfg.Database
		}
		if !cmd.Flags().Changed("quiet") {
			quiet = cfg.Quiet
		}
		if !cmd.Flags().Changed("encoding") {
			encodingName = cfg.Encoding
		}

		raw, err := os.ReadFile(input)
		if err != nil {
			serviceutil.Fatal("failed to read input document", err)
		}
		markup, err := htmlutil.DecodeDocument(raw, encodingName)
		if err != nil {
			serviceutil.Fatal("failed to decode input document", err)
		}

		t1 := time.Now()
		records := adiga.Extract(ctx, markup)
		t2 := time.Now()
		slog.Info("extraction finished",
			"records", len(records),
			"seconds", t2.Sub(t1).Seconds(),
		)

		if *extractDepartment != "" {
			records = filter.Departments(records, *extractDepartment)
			slog.Info("filtered by department",
				"query", *extractDepartment,
				"records", len(records),
			)
		}

		ext := strings.ToLower(filepath.Ext(output))
		if ext == ".csv" {
			err = report.WriteCSV(ctx, output, records)
		} else {
			err = report.WriteJSON(ctx, output, records)
		}
		if err != nil {
			serviceutil.Fatal("failed to write output", err)
		}

		csvPath := ""
		if *extractCsv && ext != ".csv" {
			csvPath = strings.TrimSuffix(output, filepath.Ext(output)) + ".csv"
			err = report.WriteCSV(ctx, csvPath, records)
			if err != nil {
				serviceutil.Fatal("failed to write csv output", err)
			}
		}

		if *extractDb != "" {
			database, err := sqliteutil.OpenDB(db.Schema, *extractDb)
			if err != nil {
				serviceutil.Fatal("failed to open archive db", err)
			}
			defer database.Close()

			runID, err := archive.NewStore(database).Push(ctx, input, records)
			if err != nil {
				serviceutil.Fatal("failed to archive run", err)
			}
			slog.Info("archived extraction run", "run", runID)
		}

		if quiet {
			return
		}
		fmt.Printf("Extracted %d records\n", len(records))
		fmt.Printf("Output saved to: %s\n", output)
		if csvPath != "" {
			fmt.Printf("CSV saved to: %s\n", csvPath)
		}
		fmt.Println()
		report.RenderSummary(os.Stdout, report.Summarize(records))
	},
}
