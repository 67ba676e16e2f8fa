package adiga

import (
	"regexp"
	"strconv"
	"strings"
)

var ratioPattern = regexp.MustCompile(`^([\d.]+):([\d.]+)$`)

// CompetitionRate normalizes the portal's 경쟁률 notation to a decimal.
// "3.75:1" style ratios divide out to two rounded places, a plain
// decimal passes through as-is. Returns false for empty cells, zero
// denominators, bare zeros and anything else that doesn't parse, so a
// missing rate never aborts a row.
func CompetitionRate(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if m := ratioPattern.FindStringSubmatch(raw); m != nil {
		num, errNum := strconv.ParseFloat(m[1], 64)
		den, errDen := strconv.ParseFloat(m[2], 64)
		if errNum != nil || errDen != nil || den == 0 {
			return 0, false
		}
		// fixed-precision formatting does correct decimal rounding,
		// exact .xx5 quotients go to the even neighbor
		rounded, _ := strconv.ParseFloat(strconv.FormatFloat(num/den, 'f', 2, 64), 64)
		return rounded, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}
