package format

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// localeLayout matches the short form used by ls: month, day, clock time
const localeLayout = "Jan 02 15:04"

// Date renders a timestamp in the configured style. A zero time, the
// degraded-metadata placeholder, renders as a dash in every style.
func Date(t time.Time, style string) string {
	if t.IsZero() {
		return "-"
	}
	switch style {
	case "humanly":
		return humanize.Time(t)
	case "timestamp":
		return strconv.FormatInt(t.Unix(), 10)
	default:
		return t.Format(localeLayout)
	}
}
