package adiga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompetitionRate(t *testing.T) {
	testCases := []struct {
		input string
		value float64
		ok    bool
	}{
		{input: "3.75:1", value: 3.75, ok: true},
		{input: " 3.75:1 ", value: 3.75, ok: true},
		{input: "7:2", value: 3.5, ok: true},
		{input: "1:3", value: 0.33, ok: true},
		{input: "2:3", value: 0.67, ok: true},
		{input: "3.999:1", value: 4, ok: true},
		{input: "24.33:1", value: 24.33, ok: true},
		// exact ties round to the even neighbor
		{input: "1.125:1", value: 1.12, ok: true},
		{input: "5:8", value: 0.62, ok: true},
		{input: "3:8", value: 0.38, ok: true},
		// a zero ratio is a real result, unlike a bare "0" placeholder
		{input: "0:5", value: 0, ok: true},
		{input: "4.08", value: 4.08, ok: true},
		{input: "12", value: 12, ok: true},
		{input: "5:0", ok: false},
		{input: "0", ok: false},
		{input: "0.00", ok: false},
		{input: "", ok: false},
		{input: "   ", ok: false},
		{input: "-", ok: false},
		{input: "미등록", ok: false},
		{input: "1.2.3:1", ok: false},
		{input: "3.75 : 1", ok: false},
		{input: "3:1:2", ok: false},
	}

	for _, test := range testCases {
		value, ok := CompetitionRate(test.input)
		require.Equal(t, test.ok, ok, "input %q", test.input)
		if test.ok {
			require.Equal(t, test.value, value, "input %q", test.input)
		}
	}
}
