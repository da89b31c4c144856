package fsys

import "github.com/rly0nheart/cerium/pkg/models"

// TreeNode is one entry plus its surviving children, built ahead of time
// when tree output needs whole-batch column widths
type TreeNode struct {
	Entry    models.Entry
	Children []*TreeNode
}

// BuildTree constructs the full tree below root, applying the same filter
// pipeline, fetch plan, and sibling ordering as flat listing
func BuildTree(t *Traverser, root string) (*TreeNode, error) {
	entry, err := t.RootEntry(root)
	if err != nil {
		return nil, err
	}

	node := &TreeNode{Entry: entry}
	if entry.Kind == models.KindDir {
		buildChildren(t, node, 0)
	}
	return node, nil
}

func buildChildren(t *Traverser, node *TreeNode, depth int) {
	if !t.CanDescend(depth) {
		return
	}
	for _, child := range t.List(node.Entry.Path, depth) {
		childNode := &TreeNode{Entry: child}
		if child.Kind == models.KindDir {
			buildChildren(t, childNode, depth+1)
		}
		node.Children = append(node.Children, childNode)
	}
}

// Flatten appends the node and all descendants to entries in pre-order
func (n *TreeNode) Flatten(entries *[]models.Entry) {
	*entries = append(*entries, n.Entry)
	for _, child := range n.Children {
		child.Flatten(entries)
	}
}

// Counts returns the directory and file counts below the root, the root
// itself excluded
func (n *TreeNode) Counts() (dirs, files int) {
	for _, child := range n.Children {
		d, f := child.count()
		dirs += d
		files += f
	}
	return dirs, files
}

func (n *TreeNode) count() (dirs, files int) {
	if n.Entry.IsDir() {
		dirs = 1
	} else {
		files = 1
	}
	for _, child := range n.Children {
		d, f := child.count()
		dirs += d
		files += f
	}
	return dirs, files
}
