package fsys

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/rly0nheart/cerium/pkg/models"
)

// Search collects entries whose names match a glob query, optionally
// descending the whole tree. Matched entries keep their root-relative path
// as the display name so results from different levels stay unambiguous.
type Search struct {
	traverser *Traverser
	logger    *zap.Logger
	pattern   string
}

// NewSearch compiles a search query. Matching is case-insensitive, and a
// query without glob metacharacters becomes a substring match, which is
// what people expect from `--find log`.
func NewSearch(query string, traverser *Traverser, logger *zap.Logger) (*Search, error) {
	pattern := strings.ToLower(query)
	if !strings.ContainsAny(pattern, "*?[{") {
		pattern = "*" + pattern + "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", query, doublestar.ErrBadPattern)
	}

	return &Search{traverser: traverser, logger: logger, pattern: pattern}, nil
}

// Find walks the tree below root and returns matching entries.
// Without the recursive flag only the first level is searched.
func (s *Search) Find(root string, recursive bool) []models.Entry {
	var matches []models.Entry

	collect := func(e *models.Entry) {
		if matched, err := doublestar.Match(s.pattern, strings.ToLower(e.Name)); err != nil || !matched {
			return
		}
		match := *e
		if rel, err := filepath.Rel(root, e.Path); err == nil {
			match.Name = rel
		}
		matches = append(matches, match)
	}

	if recursive {
		s.traverser.Walk(root, collect)
	} else {
		entries := s.traverser.List(root, 0)
		for i := range entries {
			collect(&entries[i])
		}
	}

	s.logger.Debug("Search finished",
		zap.String("pattern", s.pattern),
		zap.Int("matches", len(matches)))

	return matches
}
