package fsys

import "github.com/rly0nheart/cerium/internal/config"

// FetchPlan captures which metadata an invocation needs, derived once from
// the configuration before traversal starts. Entries only pay for the
// probes the output will actually use.
type FetchPlan struct {
	Stat    bool // stat block (sizes, dates, ownership, permissions)
	Xattr   bool // extended attribute presence
	ACL     bool // POSIX ACL presence
	Context bool // SELinux security context
	Mount   bool // mount point detection
}

// PlanFor derives the fetch plan from the configuration
func PlanFor(cfg *config.Config) FetchPlan {
	return FetchPlan{
		Stat:    cfg.WantsMetadata(),
		Xattr:   cfg.Xattr || cfg.Permission || cfg.Long,
		ACL:     cfg.ACL || cfg.Permission || cfg.Long,
		Context: cfg.Context,
		Mount:   cfg.Mountpoint,
	}
}

// Any reports whether the plan requests anything at all
func (p FetchPlan) Any() bool {
	return p.Stat || p.Xattr || p.ACL || p.Context || p.Mount
}
