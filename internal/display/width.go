package display

import (
	"sync"

	"github.com/mattn/go-runewidth"
)

var widthCache sync.Map // string -> int

// MeasureWidth returns the printed width of a string in terminal cells,
// skipping ANSI escape sequences and counting wide runes as two cells.
// Results are memoized since the same styled cell is measured repeatedly
// during layout.
func MeasureWidth(s string) int {
	if cached, ok := widthCache.Load(s); ok {
		return cached.(int)
	}

	width := 0
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != 0x1b {
			width += runewidth.RuneWidth(runes[i])
			continue
		}

		// Escape sequence: skip CSI (ESC [ ... letter) and OSC
		// (ESC ] ... BEL or ESC \) without counting them
		if i+1 >= len(runes) {
			break
		}
		switch runes[i+1] {
		case '[':
			i += 2
			for i < len(runes) && !isCSITerminator(runes[i]) {
				i++
			}
		case ']':
			i += 2
			for i < len(runes) {
				if runes[i] == 0x07 {
					break
				}
				if runes[i] == 0x1b && i+1 < len(runes) && runes[i+1] == '\\' {
					i++
					break
				}
				i++
			}
		default:
			i++
		}
	}

	widthCache.Store(s, width)
	return width
}

// isCSITerminator reports whether a rune ends a CSI sequence
func isCSITerminator(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
