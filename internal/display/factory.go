package display

import (
	"io"

	"go.uber.org/zap"

	"github.com/rly0nheart/cerium/internal/config"
	"github.com/rly0nheart/cerium/internal/fsys"
	"github.com/rly0nheart/cerium/internal/theme"
)

// Mode renders a complete listing to a writer
type Mode interface {
	Render(w io.Writer) error
}

// Select builds the display mode for one invocation.
//
// Selection order: a search query renders its matches as a list or grid,
// the tree flag gets the tree renderer, and otherwise metadata or
// table-only columns pick List over the compact Grid.
func Select(cfg *config.Config, th *theme.Theme, trav *fsys.Traverser, logger *zap.Logger) (Mode, error) {
	root := cfg.Path

	if cfg.Find != "" {
		// An unreadable root is fatal for search too
		if _, err := trav.RootEntry(root); err != nil {
			return nil, err
		}
		search, err := fsys.NewSearch(cfg.Find, trav, logger)
		if err != nil {
			return nil, err
		}
		matches := search.Find(root, cfg.Recursive)
		// Search results are a single flat batch, never re-descended
		flat := *cfg
		flat.Recursive = false
		if needsList(cfg) {
			return NewList(&flat, th, trav, logger, matches, root), nil
		}
		return NewGrid(&flat, th, trav, logger, matches, root), nil
	}

	if cfg.Tree {
		return NewTree(cfg, th, trav, logger, root), nil
	}

	entries, err := trav.Root(root)
	if err != nil {
		return nil, err
	}

	if needsList(cfg) {
		return NewList(cfg, th, trav, logger, entries, root), nil
	}
	return NewGrid(cfg, th, trav, logger, entries, root), nil
}

// needsList reports whether any requested column forces row output.
// Sorting by a metadata key alone does not; the grid stays compact.
func needsList(cfg *config.Config) bool {
	if cfg.Oneline {
		return true
	}
	// Beyond the always-present name column means real columns
	return len(selectColumns(cfg)) > 1
}
