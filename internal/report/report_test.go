package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adiga-extract/lib/scrapers/adiga"
	"adiga-extract/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func rate(v float64) *float64 {
	return &v
}

var testRecords = []adiga.Record{
	{
		Year:            "2024",
		AdmissionType:   "수시 지역균형전형",
		Department:      "국어국문학과",
		Quota:           "10",
		CompetitionRate: rate(3.75),
		WaitlistRank:    "5",
		Cut50:           "2.15",
		Cut70:           "2.35",
		Subjects:        "국어, 영어, 수학",
	},
	{
		Year:            "2024",
		AdmissionType:   "수시 지역균형전형",
		Department:      "간호학과",
		Quota:           "15",
		CompetitionRate: rate(3.5),
		WaitlistRank:    "8",
		Cut50:           "2.02",
		Cut70:           "2.19",
	},
	{
		Year:          "2024",
		AdmissionType: "정시 일반전형",
		Department:    "기계공학과",
		Quota:         "20",
		WaitlistRank:  "2",
		Cut50:         "2.77",
		Cut70:         "2.95",
	},
}

func TestWriteJSONRoundTrip(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:internal/report")
	defer cleanup()

	path := filepath.Join(t.TempDir(), "out.json")
	err := WriteJSON(context.Background(), path, testRecords)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var readBack []adiga.Record
	err = json.Unmarshal(raw, &readBack)
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(testRecords, readBack)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestWriteJSONKeepsHangulReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := WriteJSON(context.Background(), path, testRecords)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	require.Contains(t, string(raw), "국어국문학과")
	require.Contains(t, string(raw), `"competition_rate": null`)
	require.NotContains(t, string(raw), `\u`)
}

func TestWriteJSONEmptyStaysArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := WriteJSON(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteCSV(context.Background(), path, testRecords)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, bytes.HasPrefix(raw, []byte(utf8BOM)))

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte(utf8BOM)))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, rows, len(testRecords)+1)
	require.Equal(t, csvHeader, rows[0])

	require.Equal(t, "3.75", rows[1][4])
	// minimal digits, not zero padded
	require.Equal(t, "3.5", rows[2][4])
	// missing rate stays empty
	require.Equal(t, "", rows[3][4])
	require.Equal(t, "국어국문학과", rows[1][2])
}

func TestWriteCSVSkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteCSV(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestSummarize(t *testing.T) {
	s := Summarize(testRecords)

	require.Equal(t, 3, s.Total)
	require.Equal(t, "2024", s.Year)

	expected := []TypeCount{
		{AdmissionType: "수시 지역균형전형", Count: 2},
		{AdmissionType: "정시 일반전형", Count: 1},
	}
	diff := cmp.Diff(expected, s.ByType)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	require.Equal(t, 0, s.Total)
	require.Equal(t, "", s.Year)
	require.Empty(t, s.ByType)
}

func TestRenderSummary(t *testing.T) {
	var out bytes.Buffer
	RenderSummary(&out, Summarize(testRecords))

	rendered := out.String()
	require.Contains(t, rendered, "2024학년도")
	require.Contains(t, rendered, "수시 지역균형전형")
	require.Contains(t, rendered, "정시 일반전형")
	// go-pretty uppercases headers and footers
	require.Contains(t, rendered, "TOTAL")
}
