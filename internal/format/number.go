package format

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Number renders a count, used for hard links and block counts.
// humanly compacts large values with an SI suffix (12.3k), natural prints
// the exact value with thousands separators.
func Number(n uint64, style string) string {
	if style == "natural" {
		return humanize.Comma(int64(n))
	}
	if n < 1000 {
		return strconv.FormatUint(n, 10)
	}
	// humanize.SI inserts a space before the suffix; compact it
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}
