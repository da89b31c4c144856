package display

import (
	"os"

	"golang.org/x/term"

	"github.com/rly0nheart/cerium/internal/config"
)

// fallbackWidth is assumed when the terminal size cannot be determined
const fallbackWidth = 80

// outputWidth resolves the width budget for grid layout. An explicit
// width flag wins, zero meaning no limit; otherwise the terminal is
// measured, falling back to 80 columns for pipes.
func outputWidth(cfg *config.Config) int {
	if cfg.Width >= 0 {
		return cfg.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
