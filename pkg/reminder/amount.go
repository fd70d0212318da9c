package reminder

import (
	"math"
	"strconv"
	"strings"
)

// ToNum coerces a numeric-like cell to a float. Missing or empty cells
// read as 0; thousands-separator commas are removed and surrounding
// whitespace trimmed before parsing. Anything unparseable also coerces to
// 0 rather than failing: downstream eligibility gating relies on
// zero-valued fields naturally falling below the payable threshold.
func ToNum(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatAmount renders an amount the way the message template expects:
// integral values without decimals, everything else with exactly two.
func FormatAmount(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
