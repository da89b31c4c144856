package models

import (
	"path/filepath"
	"strings"
)

// SymlinkArrow separates a symlink name from its target in display output
const SymlinkArrow = " ⇒ "

// EntryKind classifies a directory entry without requiring a stat call
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
	KindOther // sockets, fifos, devices
)

// Entry represents a single filesystem entry discovered during traversal
type Entry struct {
	Path  string    // absolute or root-relative path
	Name  string    // display name (rewritten to a relative path for search results)
	Kind  EntryKind // kind from d_type, no stat needed
	Depth int       // 0 for root-level entries

	// Symlink details, populated only when Kind == KindSymlink
	Target      string // link target as stored on disk
	TargetIsDir bool   // target resolves to a directory
	Broken      bool   // target does not resolve

	Warn error     // per-entry failure, rendering degrades instead of aborting
	Meta *Metadata // lazily populated, nil until the fetch plan requires it
}

// IsDir reports whether the entry itself is a directory.
// Symlinks to directories are not directories for traversal purposes.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsDirLike reports whether the entry behaves as a directory for the
// dirs/files filters, which treat symlinks by their target.
func (e *Entry) IsDirLike() bool {
	return e.Kind == KindDir || (e.Kind == KindSymlink && e.TargetIsDir)
}

// Hidden reports whether the entry name starts with a dot
func (e *Entry) Hidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Extension returns the lowercased file extension without the leading dot
func (e *Entry) Extension() string {
	ext := filepath.Ext(e.Name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// DisplayName returns the name shown in listings, with the symlink
// target appended after the arrow for symlinks
func (e *Entry) DisplayName() string {
	if e.Kind == KindSymlink && e.Target != "" {
		return e.Name + SymlinkArrow + e.Target
	}
	return e.Name
}

// SplitSymlink splits a display name of the form "name ⇒ target" into its
// two sides. The second return value is false when the text has no arrow.
func SplitSymlink(text string) (name, target string, ok bool) {
	idx := strings.Index(text, SymlinkArrow)
	if idx < 0 {
		return "", "", false
	}
	return text[:idx], text[idx+len(SymlinkArrow):], true
}
