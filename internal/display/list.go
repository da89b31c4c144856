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

// List renders one entry per line with aligned metadata columns. Column
// widths are the maximum over the batch being rendered, so every row in a
// sibling group lines up and each recursed group fits itself afresh.
type List struct {
	cfg     *config.Config
	theme   *theme.Theme
	trav    *fsys.Traverser
	row     *rowRenderer
	entries []models.Entry
	root    string
	counts  counter
}

// NewList creates a list renderer over an already listed batch
func NewList(cfg *config.Config, th *theme.Theme, trav *fsys.Traverser, logger *zap.Logger,
	entries []models.Entry, root string) *List {
	return &List{
		cfg:     cfg,
		theme:   th,
		trav:    trav,
		row:     newRowRenderer(cfg, th, trav.Cache(), logger),
		entries: entries,
		root:    root,
	}
}

// Render writes the listing, descending recursively when configured, and
// finishes with the summary line
func (l *List) Render(w io.Writer) error {
	if l.cfg.Recursive {
		if _, err := fmt.Fprintf(w, "%s:\n", l.theme.PathHeader(l.root)); err != nil {
			return err
		}
		if err := renderRecursive(w, l, l.trav, l.theme, &l.counts, l.entries, "", 0); err != nil {
			return err
		}
	} else {
		if err := l.renderLevel(w, l.entries); err != nil {
			return err
		}
		l.counts.add(l.entries)
	}

	return l.counts.printSummary(w, l.theme)
}

// renderLevel writes one sibling group as aligned rows
func (l *List) renderLevel(w io.Writer, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	alignQuotes := false
	if l.cfg.QuoteName == "auto" {
		for i := range entries {
			if IsQuotable(entries[i].DisplayName()) {
				alignQuotes = true
				break
			}
		}
	}

	widths := l.row.widths(entries, alignQuotes)

	if l.cfg.Headers {
		if err := l.row.renderHeaders(w, widths); err != nil {
			return err
		}
	}

	for i := range entries {
		if err := l.row.renderRow(w, &entries[i], widths, alignQuotes); err != nil {
			return err
		}
	}
	return nil
}
