package models

import "fmt"

// SortBy selects the key used to order entries within a sibling group
type SortBy int

const (
	SortName SortBy = iota
	SortSize
	SortCreated
	SortAccessed
	SortModified
	SortExtension
	SortInode
)

// NeedsMetadata reports whether sorting by this key requires a stat call.
// Name and extension sorts work from the directory listing alone.
func (s SortBy) NeedsMetadata() bool {
	switch s {
	case SortSize, SortCreated, SortAccessed, SortModified, SortInode:
		return true
	}
	return false
}

// ParseSortBy converts a config string to a sort key
func ParseSortBy(s string) (SortBy, error) {
	switch s {
	case "name", "":
		return SortName, nil
	case "size":
		return SortSize, nil
	case "created":
		return SortCreated, nil
	case "accessed":
		return SortAccessed, nil
	case "modified":
		return SortModified, nil
	case "extension":
		return SortExtension, nil
	case "inode":
		return SortInode, nil
	}
	return SortName, fmt.Errorf("unknown sort key: %s", s)
}
