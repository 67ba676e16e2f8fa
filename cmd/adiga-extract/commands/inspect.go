package commands

import (
	"fmt"
	"os"
	"strings"

	"adiga-extract/lib/htmlutil"
	"adiga-extract/lib/scrapers/adiga"
	"adiga-extract/lib/serviceutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// inspect renders the table layout of a response document so broken
// extractions can be debugged without reading raw markup.
var inspectCmd = &cobra.Command{
	Use:   "inspect [input.html]",
	Short: "Report the table layout of a saved portal response.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := "adiga_response.html"
		if len(args) > 0 {
			input = args[0]
		}

		raw, err := os.ReadFile(input)
		if err != nil {
			serviceutil.Fatal("failed to read input document", err)
		}
		markup, err := htmlutil.DecodeDocument(raw, encodingName)
		if err != nil {
			serviceutil.Fatal("failed to decode input document", err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
		if err != nil {
			serviceutil.Fatal("failed to parse document", err)
		}

		doc.Find("p").Each(func(_ int, p *goquery.Selection) {
			if p.ParentsFiltered("table").Length() > 0 {
				return
			}
			if year, ok := adiga.AcademicYear(htmlutil.CellText(p.Nodes[0])); ok {
				fmt.Printf("year announcement: %s학년도\n", year)
			}
		})

		t := newTable()
		t.AppendHeader(table.Row{"#", "rows", "max cols", "first row"})
		doc.Find("table").Each(func(i int, tbl *goquery.Selection) {
			rows := tbl.Find("tr")
			maxCells := 0
			rows.Each(func(_ int, tr *goquery.Selection) {
				if n := tr.Find("td").Length(); n > maxCells {
					maxCells = n
				}
			})

			preview := ""
			if first := rows.First(); first.Length() > 0 {
				var cells []string
				first.Find("td").Each(func(_ int, td *goquery.Selection) {
					cells = append(cells, htmlutil.CellText(td.Nodes[0]))
				})
				preview = strings.Join(cells, " | ")
			}

			t.AppendRow(table.Row{i + 1, rows.Length(), maxCells, preview})
		})
		t.Render()
	},
}
