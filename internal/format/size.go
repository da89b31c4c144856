// Package format renders metadata values as display strings. Every
// function is pure so results can be memoized by value.
package format

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Size renders a byte count in the configured unit system.
// bytes prints the raw count, binary uses IEC units (KiB), and decimal
// uses SI units (kB).
func Size(bytes int64, style string) string {
	switch style {
	case "bytes":
		return strconv.FormatInt(bytes, 10)
	case "binary":
		return humanize.IBytes(uint64(bytes))
	default:
		return humanize.Bytes(uint64(bytes))
	}
}
