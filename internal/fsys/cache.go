package fsys

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Cache memoizes the expensive per-entry lookups for the lifetime of a run:
// uid/gid name resolution, recursive directory sizes, and formatted cell
// values. All methods are safe for concurrent use.
type Cache struct {
	mu        sync.RWMutex
	users     map[uint32]string
	groups    map[uint32]string
	trueSizes map[string]int64
	memo      map[string]string

	// Injectable for tests
	lookupUser  func(uid string) (*user.User, error)
	lookupGroup func(gid string) (*user.Group, error)
}

// NewCache creates an empty cache backed by the system user database
func NewCache() *Cache {
	return &Cache{
		users:       make(map[uint32]string),
		groups:      make(map[uint32]string),
		trueSizes:   make(map[string]int64),
		memo:        make(map[string]string),
		lookupUser:  user.LookupId,
		lookupGroup: user.LookupGroupId,
	}
}

// UserName resolves a uid to a user name, falling back to the numeric id
// when the lookup fails. Each uid is resolved at most once; failures are
// memoized too, so a missing uid costs a single lookup per run.
func (c *Cache) UserName(uid uint32) string {
	c.mu.RLock()
	name, ok := c.users[uid]
	c.mu.RUnlock()
	if ok {
		return name
	}

	name = strconv.FormatUint(uint64(uid), 10)
	if u, err := c.lookupUser(name); err == nil {
		name = u.Username
	}

	c.mu.Lock()
	c.users[uid] = name
	c.mu.Unlock()
	return name
}

// GroupName resolves a gid to a group name, falling back to the numeric id
func (c *Cache) GroupName(gid uint32) string {
	c.mu.RLock()
	name, ok := c.groups[gid]
	c.mu.RUnlock()
	if ok {
		return name
	}

	name = strconv.FormatUint(uint64(gid), 10)
	if g, err := c.lookupGroup(name); err == nil {
		name = g.Name
	}

	c.mu.Lock()
	c.groups[gid] = name
	c.mu.Unlock()
	return name
}

// TrueSize aggregates the byte size of a directory's contents recursively.
// Each (path, includeHidden) pair is walked at most once per run. A visited
// device/inode set guards against symlink and bind-mount cycles, and
// unreadable subtrees contribute zero instead of failing the aggregation.
func (c *Cache) TrueSize(path string, includeHidden bool) int64 {
	key := path + "\x00" + strconv.FormatBool(includeHidden)

	c.mu.RLock()
	size, ok := c.trueSizes[key]
	c.mu.RUnlock()
	if ok {
		return size
	}

	visited := make(map[[2]uint64]struct{})
	size = dirSize(path, includeHidden, visited)

	c.mu.Lock()
	c.trueSizes[key] = size
	c.mu.Unlock()
	return size
}

// Memo returns the cached formatted value for a key, computing and storing
// it on first use. Keys are namespaced by the caller, e.g. "size:1024:binary".
func (c *Cache) Memo(key string, compute func() string) string {
	c.mu.RLock()
	value, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return value
	}

	value = compute()

	c.mu.Lock()
	c.memo[key] = value
	c.mu.Unlock()
	return value
}

// dirSize walks a directory accumulating file sizes
func dirSize(path string, includeHidden bool, visited map[[2]uint64]struct{}) int64 {
	meta, err := statPath(path, false)
	if err != nil {
		return 0
	}
	id := [2]uint64{meta.Dev, meta.Inode}
	if _, seen := visited[id]; seen {
		return 0
	}
	visited[id] = struct{}{}

	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	var size int64
	for _, entry := range entries {
		if !includeHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			size += dirSize(child, includeHidden, visited)
			continue
		}
		// Only regular files contribute; symlinks and special files are skipped
		if info, err := entry.Info(); err == nil && info.Mode().IsRegular() {
			size += info.Size()
		}
	}
	return size
}
