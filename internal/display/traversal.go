package display

import (
	"fmt"
	"io"

	"github.com/rly0nheart/cerium/internal/fsys"
	"github.com/rly0nheart/cerium/internal/theme"
	"github.com/rly0nheart/cerium/pkg/models"
)

// levelRenderer renders one directory level. The grid and list renderers
// implement it; recursive traversal around a level is identical for both:
// print a section title, render the level, count it, then descend into
// each subdirectory with a freshly computed layout.
type levelRenderer interface {
	renderLevel(w io.Writer, entries []models.Entry) error
}

// renderRecursive renders a level and descends into its subdirectories.
// An empty title suppresses the section header for the root call, whose
// header the caller prints without the leading blank line.
func renderRecursive(w io.Writer, r levelRenderer, trav *fsys.Traverser, th *theme.Theme,
	counts *counter, entries []models.Entry, title string, depth int) error {

	if title != "" {
		if _, err := fmt.Fprintf(w, "\n%s:\n", th.PathHeader(title)); err != nil {
			return err
		}
	}

	if err := r.renderLevel(w, entries); err != nil {
		return err
	}
	counts.add(entries)

	for i := range entries {
		entry := &entries[i]
		if !entry.IsDir() || !trav.CanDescend(depth+1) {
			continue
		}
		children := trav.List(entry.Path, depth+1)
		if err := renderRecursive(w, r, trav, th, counts, children, entry.Path, depth+1); err != nil {
			return err
		}
	}
	return nil
}
