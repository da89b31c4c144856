package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rly0nheart/cerium/internal/config"
	"github.com/rly0nheart/cerium/pkg/models"
)

// Traverser walks the filesystem one directory level at a time, applying
// the filter pipeline, the fetch plan, and per-sibling-group sorting.
// Filters run in a fixed order: hidden, then kind, then hide globs.
type Traverser struct {
	cfg      *config.Config
	logger   *zap.Logger
	resolver *Resolver
	cache    *Cache
	plan     FetchPlan
	sortKey  models.SortBy
	collator *collate.Collator
}

// NewTraverser creates a traverser for one invocation
func NewTraverser(cfg *config.Config, logger *zap.Logger, resolver *Resolver, cache *Cache) *Traverser {
	t := &Traverser{
		cfg:      cfg,
		logger:   logger,
		resolver: resolver,
		cache:    cache,
		plan:     PlanFor(cfg),
		sortKey:  cfg.SortKey(),
		collator: collate.New(language.Und, collate.IgnoreCase),
	}

	for _, pattern := range cfg.Hide {
		if !doublestar.ValidatePattern(pattern) {
			logger.Warn("Invalid hide pattern", zap.String("pattern", pattern))
		}
	}

	return t
}

// Cache exposes the lookup cache shared with renderers
func (t *Traverser) Cache() *Cache { return t.cache }

// Resolver exposes the metadata resolver shared with renderers
func (t *Traverser) Resolver() *Resolver { return t.resolver }

// Plan exposes the fetch plan derived from the configuration
func (t *Traverser) Plan() FetchPlan { return t.plan }

// Root lists the entries for the root path. A directory yields its filtered
// children; anything else that lstat can see, broken symlinks included,
// yields a single-entry batch. An unreadable root is the only fatal error.
func (t *Traverser) Root(path string) ([]models.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	if info.IsDir() {
		return t.List(path, 0), nil
	}

	entry := t.entryFromInfo(path, info, 0)
	t.resolver.Enrich(&entry, t.plan)
	return []models.Entry{entry}, nil
}

// RootEntry builds an enriched entry for the root path itself, used by
// tree output where the root is the first rendered line
func (t *Traverser) RootEntry(path string) (models.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return models.Entry{}, fmt.Errorf("cannot access %s: %w", path, err)
	}
	entry := t.entryFromInfo(path, info, 0)
	entry.Name = filepath.Clean(path)
	t.resolver.Enrich(&entry, t.plan)
	return entry, nil
}

// List reads, filters, enriches, and sorts one directory level.
// Per-entry failures are logged and skipped; they never abort the level.
func (t *Traverser) List(dir string, depth int) []models.Entry {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		t.logger.Warn("Error reading directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	entries := make([]models.Entry, 0, len(dirents))
	for _, d := range dirents {
		entry := t.entryFromDirEntry(dir, d, depth)
		if !t.keep(&entry) {
			continue
		}
		if t.cfg.Prune && entry.Kind == models.KindDir && !t.hasSurvivor(entry.Path) {
			continue
		}

		t.resolver.Enrich(&entry, t.plan)
		entries = append(entries, entry)
	}

	t.Sort(entries)
	return entries
}

// Walk visits every surviving entry under root in pre-order, respecting
// the configured depth limit
func (t *Traverser) Walk(root string, fn func(*models.Entry)) {
	t.walk(root, 0, fn)
}

func (t *Traverser) walk(dir string, depth int, fn func(*models.Entry)) {
	entries := t.List(dir, depth)
	for i := range entries {
		fn(&entries[i])
		if entries[i].Kind == models.KindDir && t.CanDescend(depth+1) {
			t.walk(entries[i].Path, depth+1, fn)
		}
	}
}

// CanDescend reports whether children at the given depth are within the
// configured depth limit. Depth 0 is the root level.
func (t *Traverser) CanDescend(childDepth int) bool {
	return t.cfg.MaxDepth == 0 || childDepth < t.cfg.MaxDepth
}

// entryFromDirEntry builds an entry from a directory read, using the entry
// type reported by the directory itself so no stat call is needed
func (t *Traverser) entryFromDirEntry(dir string, d os.DirEntry, depth int) models.Entry {
	entry := models.Entry{
		Path:  filepath.Join(dir, d.Name()),
		Name:  d.Name(),
		Kind:  kindFromMode(d.Type()),
		Depth: depth,
	}
	if entry.Kind == models.KindSymlink {
		t.readTarget(&entry)
	}
	return entry
}

// entryFromInfo builds an entry from an already completed lstat
func (t *Traverser) entryFromInfo(path string, info os.FileInfo, depth int) models.Entry {
	entry := models.Entry{
		Path:  path,
		Name:  filepath.Base(path),
		Kind:  kindFromMode(info.Mode().Type()),
		Depth: depth,
	}
	if entry.Kind == models.KindSymlink {
		t.readTarget(&entry)
	}
	return entry
}

// readTarget records the symlink target and whether it resolves
func (t *Traverser) readTarget(entry *models.Entry) {
	target, err := os.Readlink(entry.Path)
	if err != nil {
		entry.Warn = err
		entry.Broken = true
		return
	}
	entry.Target = target

	info, err := os.Stat(entry.Path)
	if err != nil {
		entry.Broken = true
		return
	}
	entry.TargetIsDir = info.IsDir()
}

// keep applies the filter pipeline: hidden, then kind, then hide globs
func (t *Traverser) keep(e *models.Entry) bool {
	if !t.cfg.All && e.Hidden() {
		return false
	}
	if t.cfg.Dirs && !e.IsDirLike() {
		return false
	}
	if t.cfg.Files && e.IsDirLike() {
		return false
	}
	return !t.hideMatch(e.Name)
}

// hideMatch reports whether any hide glob matches the entry name
func (t *Traverser) hideMatch(name string) bool {
	for _, pattern := range t.cfg.Hide {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// hasSurvivor reports whether anything at any depth below dir would
// survive the filter pipeline. Short-circuits on the first survivor.
func (t *Traverser) hasSurvivor(dir string) bool {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	for _, d := range dirents {
		entry := models.Entry{Name: d.Name(), Kind: kindFromMode(d.Type())}
		if entry.Kind == models.KindDir {
			// A directory only counts if its own subtree has a survivor
			if !t.cfg.All && entry.Hidden() {
				continue
			}
			if t.hideMatch(entry.Name) {
				continue
			}
			if t.hasSurvivor(filepath.Join(dir, d.Name())) {
				return true
			}
			continue
		}
		if t.keep(&entry) {
			return true
		}
	}
	return false
}

// Sort orders one sibling group in place. The sort is stable within equal
// keys, metadata-backed keys fall back to zero for degraded entries, and
// the reverse flag inverts the final ordering.
func (t *Traverser) Sort(entries []models.Entry) {
	if t.sortKey.NeedsMetadata() {
		statPlan := FetchPlan{Stat: true}
		for i := range entries {
			t.resolver.Enrich(&entries[i], statPlan)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := &entries[i], &entries[j]
		switch t.sortKey {
		case models.SortSize:
			if sa, sb := metaSize(a), metaSize(b); sa != sb {
				return sa < sb
			}
		case models.SortModified:
			if ta, tb := metaTime(a, timeModified), metaTime(b, timeModified); !ta.Equal(tb) {
				return ta.Before(tb)
			}
		case models.SortCreated:
			if ta, tb := metaTime(a, timeChanged), metaTime(b, timeChanged); !ta.Equal(tb) {
				return ta.Before(tb)
			}
		case models.SortAccessed:
			if ta, tb := metaTime(a, timeAccessed), metaTime(b, timeAccessed); !ta.Equal(tb) {
				return ta.Before(tb)
			}
		case models.SortInode:
			if ia, ib := metaInode(a), metaInode(b); ia != ib {
				return ia < ib
			}
		case models.SortExtension:
			if c := t.collator.CompareString(a.Extension(), b.Extension()); c != 0 {
				return c < 0
			}
		}
		return t.collator.CompareString(a.Name, b.Name) < 0
	})

	if t.cfg.Reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
}

type timeField int

const (
	timeAccessed timeField = iota
	timeModified
	timeChanged
)

func metaSize(e *models.Entry) int64 {
	if e.Meta == nil || !e.Meta.Ok {
		return 0
	}
	return e.Meta.Size
}

func metaInode(e *models.Entry) uint64 {
	if e.Meta == nil || !e.Meta.Ok {
		return 0
	}
	return e.Meta.Inode
}

func metaTime(e *models.Entry, field timeField) time.Time {
	if e.Meta == nil || !e.Meta.Ok {
		return time.Time{}
	}
	switch field {
	case timeAccessed:
		return e.Meta.Accessed
	case timeModified:
		return e.Meta.Modified
	default:
		return e.Meta.Changed
	}
}

// kindFromMode maps a file mode's type bits to an entry kind
func kindFromMode(mode os.FileMode) models.EntryKind {
	switch {
	case mode.IsDir():
		return models.KindDir
	case mode&os.ModeSymlink != 0:
		return models.KindSymlink
	case mode.IsRegular():
		return models.KindFile
	default:
		return models.KindOther
	}
}
