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

// Box-drawing connectors for tree output
const (
	lineConnector   = "│   " // │
	edgeConnector   = "├── " // ├──
	cornerConnector = "╰── " // ╰──
	fourSpaces      = "    "
)

// Tree renders the hierarchy with box-drawing connectors.
//
// Without metadata columns it streams: entries print as they are
// discovered, giving instant feedback on large trees. With columns it
// builds the whole tree first so column widths can span the batch.
type Tree struct {
	cfg    *config.Config
	theme  *theme.Theme
	trav   *fsys.Traverser
	logger *zap.Logger
	row    *rowRenderer
	root   string
	counts counter
}

// NewTree creates a tree renderer rooted at the given path
func NewTree(cfg *config.Config, th *theme.Theme, trav *fsys.Traverser, logger *zap.Logger, root string) *Tree {
	return &Tree{
		cfg:    cfg,
		theme:  th,
		trav:   trav,
		logger: logger,
		row:    newRowRenderer(cfg, th, trav.Cache(), logger),
		root:   root,
	}
}

// Render writes the tree and finishes with the summary line.
// The root counts as neither directory nor file in the summary.
func (t *Tree) Render(w io.Writer) error {
	if len(t.row.columns) > 0 {
		if err := t.renderTable(w); err != nil {
			return err
		}
	} else {
		entry, err := t.trav.RootEntry(t.root)
		if err != nil {
			return err
		}
		if err := t.stream(w, &entry, nil); err != nil {
			return err
		}
	}

	return t.counts.printSummary(w, t.theme)
}

// stream prints an entry immediately and descends into directories.
// parentsLast records, for each ancestor, whether it was the last child
// of its own parent; the connector column is derived from it.
func (t *Tree) stream(w io.Writer, entry *models.Entry, parentsLast []bool) error {
	connector := drawConnector(parentsLast)
	name := t.row.styledName(entry, false)
	if _, err := fmt.Fprintf(w, "%s%s\n", t.theme.Connector(connector), name); err != nil {
		return err
	}

	if len(parentsLast) > 0 {
		if entry.IsDir() {
			t.counts.dirs++
		} else {
			t.counts.files++
		}
	}

	if !entry.IsDir() || !t.trav.CanDescend(len(parentsLast)) {
		return nil
	}

	children := t.trav.List(entry.Path, len(parentsLast))
	for i := range children {
		childParents := append(append([]bool(nil), parentsLast...), i == len(children)-1)
		if err := t.stream(w, &children[i], childParents); err != nil {
			return err
		}
	}
	return nil
}

// renderTable builds the full tree, measures column widths across the
// whole batch, then renders rows with connectors between columns and name
func (t *Tree) renderTable(w io.Writer) error {
	node, err := fsys.BuildTree(t.trav, t.root)
	if err != nil {
		return err
	}

	var entries []models.Entry
	node.Flatten(&entries)

	alignQuotes := false
	if t.cfg.QuoteName == "auto" {
		for i := range entries {
			if IsQuotable(entries[i].DisplayName()) {
				alignQuotes = true
				break
			}
		}
	}

	widths := t.row.widths(entries, alignQuotes)

	if t.cfg.Headers {
		if err := t.row.renderHeaders(w, widths); err != nil {
			return err
		}
	}

	if err := t.renderNode(w, node, nil, widths); err != nil {
		return err
	}

	t.counts.dirs, t.counts.files = node.Counts()
	return nil
}

// renderNode writes one node's row and recurses over its children
func (t *Tree) renderNode(w io.Writer, node *fsys.TreeNode, parentsLast []bool, widths map[models.Column]int) error {
	connector := drawConnector(parentsLast)
	prefix := t.row.rowPrefix(&node.Entry, widths)
	name := t.row.styledName(&node.Entry, false)

	if _, err := fmt.Fprintf(w, "%s %s%s\n", prefix, t.theme.Connector(connector), name); err != nil {
		return err
	}

	for i, child := range node.Children {
		childParents := append(append([]bool(nil), parentsLast...), i == len(node.Children)-1)
		if err := t.renderNode(w, child, childParents, widths); err != nil {
			return err
		}
	}
	return nil
}

// drawConnector builds the connector column for a node from its ancestry.
// Ancestors that were last children leave a gap, others a vertical line;
// the node itself gets a corner when last, an edge otherwise.
func drawConnector(parentsLast []bool) string {
	depth := len(parentsLast)
	if depth == 0 {
		return ""
	}

	var connector string
	for _, last := range parentsLast[:depth-1] {
		if last {
			connector += fourSpaces
		} else {
			connector += lineConnector
		}
	}
	if parentsLast[depth-1] {
		connector += cornerConnector
	} else {
		connector += edgeConnector
	}
	return connector
}
