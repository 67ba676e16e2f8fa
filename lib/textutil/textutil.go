package textutil

import (
	"strings"
)

// CollapseSpace trims s and collapses every internal whitespace run to
// a single space. Runs cover all of Unicode whitespace, portal cells
// pad values with &nbsp; and full-width U+3000 spaces.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName produces a stable key for comparing department names
// across documents.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}
