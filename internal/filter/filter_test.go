package filter

import (
	"testing"

	"adiga-extract/lib/scrapers/adiga"

	"github.com/stretchr/testify/require"
)

func records(departments ...string) []adiga.Record {
	out := make([]adiga.Record, len(departments))
	for i, d := range departments {
		out[i] = adiga.Record{Department: d, Year: "2024"}
	}
	return out
}

func names(records []adiga.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Department
	}
	return out
}

func TestEmptyQueryKeepsEverything(t *testing.T) {
	in := records("컴퓨터공학과", "간호학과")
	require.Equal(t, in, Departments(in, ""))
	require.Equal(t, in, Departments(in, "   "))
}

func TestSubstringMatch(t *testing.T) {
	in := records("컴퓨터공학과", "기계공학과", "간호학과")

	out := Departments(in, "컴퓨터")
	require.Equal(t, []string{"컴퓨터공학과"}, names(out))

	// normalization ignores case and internal spacing
	latin := records("Computer Science", "Nursing")
	out = Departments(latin, "computer science")
	require.Equal(t, []string{"Computer Science"}, names(out))
}

func TestFuzzyMatchSurvivesTypo(t *testing.T) {
	in := records("Computer Science", "Nursing")

	// transposed letters, not a substring of the normalized name
	out := Departments(in, "computersceince")
	require.Equal(t, []string{"Computer Science"}, names(out))
}

func TestUnrelatedQueryMatchesNothing(t *testing.T) {
	in := records("Computer Science", "Nursing")
	out := Departments(in, "astrophysics")
	require.Empty(t, out)
}
