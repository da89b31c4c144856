package display

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rly0nheart/cerium/internal/config"
	"github.com/rly0nheart/cerium/internal/fsys"
	"github.com/rly0nheart/cerium/internal/theme"
	"github.com/rly0nheart/cerium/pkg/models"
)

// Grid renders names in terminal-width-aware columns, the compact default
// when no metadata columns are requested
type Grid struct {
	cfg     *config.Config
	theme   *theme.Theme
	trav    *fsys.Traverser
	row     *rowRenderer
	entries []models.Entry
	root    string
	counts  counter
}

// NewGrid creates a grid renderer over an already listed batch
func NewGrid(cfg *config.Config, th *theme.Theme, trav *fsys.Traverser, logger *zap.Logger,
	entries []models.Entry, root string) *Grid {
	return &Grid{
		cfg:     cfg,
		theme:   th,
		trav:    trav,
		row:     newRowRenderer(cfg, th, trav.Cache(), logger),
		entries: entries,
		root:    root,
	}
}

// Render writes the grid, descending recursively when configured, and
// finishes with the summary line
func (g *Grid) Render(w io.Writer) error {
	if g.cfg.Recursive {
		if _, err := fmt.Fprintf(w, "%s:\n", g.theme.PathHeader(g.root)); err != nil {
			return err
		}
		if err := renderRecursive(w, g, g.trav, g.theme, &g.counts, g.entries, "", 0); err != nil {
			return err
		}
	} else {
		if err := g.renderLevel(w, g.entries); err != nil {
			return err
		}
		g.counts.add(g.entries)
	}

	return g.counts.printSummary(w, g.theme)
}

// renderLevel lays one sibling group out in columns. Each level fits its
// own layout; sibling groups never share column widths.
func (g *Grid) renderLevel(w io.Writer, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	alignQuotes := false
	if g.cfg.QuoteName == "auto" {
		for i := range entries {
			if IsQuotable(entries[i].DisplayName()) {
				alignQuotes = true
				break
			}
		}
	}

	cells := make([]gridCell, 0, len(entries))
	for i := range entries {
		text := g.row.styledName(&entries[i], alignQuotes)
		cells = append(cells, gridCell{text: text, width: MeasureWidth(text)})
	}

	return fitGrid(cells, outputWidth(g.cfg)).render(w, cells)
}
