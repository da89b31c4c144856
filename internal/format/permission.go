package format

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/rly0nheart/cerium/pkg/models"
)

// Permissions renders a raw st_mode in the configured style.
// Symbolic output appends one indicator, the way ls marks them: `@` for
// extended attributes, `+` for an ACL. When both are present the xattr
// indicator wins.
func Permissions(meta *models.Metadata, style string) string {
	switch style {
	case "octal":
		return fmt.Sprintf("%04o", meta.Mode&07777)
	case "hex":
		return fmt.Sprintf("%03x", meta.Mode&07777)
	}

	var b strings.Builder
	b.WriteByte(fileTypeChar(meta.Mode))

	b.WriteString(triad(meta.Mode >> 6))
	b.WriteString(triad(meta.Mode >> 3))
	b.WriteString(triad(meta.Mode))

	s := b.String()
	// Rebuild the execute slots for setuid, setgid, and sticky
	out := []byte(s)
	if meta.Mode&unix.S_ISUID != 0 {
		out[3] = specialChar(out[3], 's')
	}
	if meta.Mode&unix.S_ISGID != 0 {
		out[6] = specialChar(out[6], 's')
	}
	if meta.Mode&unix.S_ISVTX != 0 {
		out[9] = specialChar(out[9], 't')
	}

	result := string(out)
	if meta.Xattr == models.PresenceYes {
		result += "@"
	} else if meta.ACL == models.PresenceYes {
		result += "+"
	}
	return result
}

// fileTypeChar maps the S_IFMT bits to the leading type character
func fileTypeChar(mode uint32) byte {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return 'd'
	case unix.S_IFLNK:
		return 'l'
	case unix.S_IFBLK:
		return 'b'
	case unix.S_IFCHR:
		return 'c'
	case unix.S_IFIFO:
		return 'p'
	case unix.S_IFSOCK:
		return 's'
	case unix.S_IFREG:
		return '.'
	default:
		return '?'
	}
}

// triad renders one rwx group from the low three bits
func triad(bits uint32) string {
	out := []byte{'-', '-', '-'}
	if bits&4 != 0 {
		out[0] = 'r'
	}
	if bits&2 != 0 {
		out[1] = 'w'
	}
	if bits&1 != 0 {
		out[2] = 'x'
	}
	return string(out)
}

// specialChar substitutes the execute slot for setuid/setgid/sticky bits,
// uppercase when the underlying execute bit is clear
func specialChar(current byte, char byte) byte {
	if current == 'x' {
		return char
	}
	return char - 'a' + 'A'
}
