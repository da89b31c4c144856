//go:build !linux

package fsys

import "github.com/rly0nheart/cerium/pkg/models"

// Extended attribute, ACL, and SELinux probes are Linux-only.
// Other platforms render their columns as unavailable.

func hasXattr(string) models.Presence { return models.PresenceUnknown }

func hasACL(string) models.Presence { return models.PresenceUnknown }

func securityContext(string) string { return "" }
