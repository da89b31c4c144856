//go:build linux

package fsys

import (
	"golang.org/x/sys/unix"

	"github.com/rly0nheart/cerium/pkg/models"
)

const (
	aclAttr     = "system.posix_acl_access"
	selinuxAttr = "security.selinux"
)

// hasXattr probes for user-visible extended attributes without reading them
func hasXattr(path string) models.Presence {
	names, err := listXattrNames(path)
	if err != nil {
		return models.PresenceUnknown
	}
	for _, name := range names {
		// System namespaces back ACLs and SELinux, not user xattrs
		if name != aclAttr && name != selinuxAttr {
			return models.PresenceYes
		}
	}
	return models.PresenceNo
}

// hasACL probes for a POSIX access ACL
func hasACL(path string) models.Presence {
	_, err := unix.Lgetxattr(path, aclAttr, nil)
	if err == nil {
		return models.PresenceYes
	}
	if err == unix.ENODATA {
		return models.PresenceNo
	}
	return models.PresenceUnknown
}

// securityContext reads the SELinux context, empty when unavailable
func securityContext(path string) string {
	buf := make([]byte, 256)
	n, err := unix.Lgetxattr(path, selinuxAttr, buf)
	if err != nil || n <= 0 {
		return ""
	}
	// The context is NUL terminated
	if buf[n-1] == 0 {
		n--
	}
	return string(buf[:n])
}

// listXattrNames returns the NUL-separated attribute names on a path
func listXattrNames(path string) ([]string, error) {
	size, err := unix.Llistxattr(path, nil)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	n, err := unix.Llistxattr(path, buf)
	if err != nil {
		return nil, err
	}

	var names []string
	start := 0
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			if i > start {
				names = append(names, string(buf[start:i]))
			}
			start = i + 1
		}
	}
	return names, nil
}
