// Package filter narrows extraction results to the departments a user
// asked about.
package filter

import (
	"strings"

	"adiga-extract/lib/scrapers/adiga"
	"adiga-extract/lib/textutil"

	"github.com/antzucaro/matchr"
)

// names at least this similar to the query still match, so a small
// typo doesn't hide a department
const similarityFloor = 0.9

// Departments keeps the records whose department name contains query
// or sits within the similarity floor of it. An empty query keeps
// everything.
func Departments(records []adiga.Record, query string) []adiga.Record {
	q := textutil.NormalizeName(query)
	if q == "" {
		return records
	}

	var out []adiga.Record
	for _, r := range records {
		name := textutil.NormalizeName(r.Department)
		if strings.Contains(name, q) || matchr.JaroWinkler(name, q, false) >= similarityFloor {
			out = append(out, r)
		}
	}
	return out
}
