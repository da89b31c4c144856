package fsys

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rly0nheart/cerium/pkg/models"
)

// Resolver fetches entry metadata on demand. Failures degrade: the entry
// keeps an empty metadata record and a warning instead of aborting the run.
type Resolver struct {
	dereference bool
	logger      *zap.Logger
}

// NewResolver creates a metadata resolver.
// With dereference set, symlinks are resolved before the stat call.
func NewResolver(dereference bool, logger *zap.Logger) *Resolver {
	return &Resolver{dereference: dereference, logger: logger}
}

// Stat reads the stat block for a path.
// On failure it returns an empty record alongside the error so callers can
// render placeholders instead of dropping the entry.
func (r *Resolver) Stat(path string) (*models.Metadata, error) {
	meta, err := statPath(path, r.dereference)
	if err != nil {
		return &models.Metadata{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return meta, nil
}

// Enrich populates the entry's metadata according to the fetch plan.
// Idempotent: a second call with the same plan does no extra work.
func (r *Resolver) Enrich(e *models.Entry, plan FetchPlan) {
	if !plan.Any() {
		return
	}

	if e.Meta == nil {
		e.Meta = &models.Metadata{}
	}
	meta := e.Meta

	if plan.Stat && !meta.Ok {
		fetched, err := r.Stat(e.Path)
		if err != nil {
			e.Warn = err
			r.logger.Warn("Failed to read metadata",
				zap.String("path", e.Path), zap.Error(err))
		} else {
			probes := *meta
			*meta = *fetched
			meta.Xattr = probes.Xattr
			meta.ACL = probes.ACL
			meta.Mounted = probes.Mounted
			meta.Context = probes.Context
		}
	}

	if plan.Xattr && meta.Xattr == models.PresenceUnknown {
		meta.Xattr = hasXattr(e.Path)
	}
	if plan.ACL && meta.ACL == models.PresenceUnknown {
		meta.ACL = hasACL(e.Path)
	}
	if plan.Context && meta.Context == "" {
		meta.Context = securityContext(e.Path)
	}
	if plan.Mount && meta.Mounted == models.PresenceUnknown {
		meta.Mounted = r.isMountPoint(e.Path)
	}
}

// isMountPoint compares the entry's device number against its parent's
func (r *Resolver) isMountPoint(path string) models.Presence {
	abs, err := filepath.Abs(path)
	if err != nil {
		return models.PresenceUnknown
	}
	if abs == string(os.PathSeparator) {
		return models.PresenceYes
	}

	self, err := statPath(abs, false)
	if err != nil {
		return models.PresenceUnknown
	}
	parent, err := statPath(filepath.Dir(abs), false)
	if err != nil {
		return models.PresenceUnknown
	}

	if self.Dev != parent.Dev {
		return models.PresenceYes
	}
	return models.PresenceNo
}
