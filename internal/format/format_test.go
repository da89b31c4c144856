package format

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/rly0nheart/cerium/pkg/models"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		style string
		want  string
	}{
		{"raw bytes", 1234, "bytes", "1234"},
		{"zero bytes", 0, "bytes", "0"},
		{"binary units", 2048, "binary", "2.0 KiB"},
		{"decimal units", 2000, "decimal", "2.0 kB"},
		{"small decimal", 500, "decimal", "500 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.bytes, tt.style); got != tt.want {
				t.Errorf("Size(%d, %q) = %q, want %q", tt.bytes, tt.style, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	stamp := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		t     time.Time
		style string
		want  string
	}{
		{"locale", stamp, "locale", "Mar 05 14:30"},
		{"timestamp", stamp, "timestamp", "1709649000"},
		{"zero renders dash", time.Time{}, "locale", "-"},
		{"zero renders dash in any style", time.Time{}, "timestamp", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.t, tt.style); got != tt.want {
				t.Errorf("Date(%v, %q) = %q, want %q", tt.t, tt.style, got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		n     uint64
		style string
		want  string
	}{
		{"small humanly", 42, "humanly", "42"},
		{"large humanly", 1500, "humanly", "1.5k"},
		{"natural", 1234567, "natural", "1,234,567"},
		{"small natural", 7, "natural", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.n, tt.style); got != tt.want {
				t.Errorf("Number(%d, %q) = %q, want %q", tt.n, tt.style, got, tt.want)
			}
		})
	}
}

type fakeResolver struct{}

func (fakeResolver) UserName(uint32) string  { return "ritchie" }
func (fakeResolver) GroupName(uint32) string { return "wheel" }

func TestOwnership(t *testing.T) {
	if got := User(1000, "name", fakeResolver{}); got != "ritchie" {
		t.Errorf("User(name) = %q", got)
	}
	if got := User(1000, "id", fakeResolver{}); got != "1000" {
		t.Errorf("User(id) = %q", got)
	}
	if got := Group(10, "name", fakeResolver{}); got != "wheel" {
		t.Errorf("Group(name) = %q", got)
	}
	if got := Group(10, "id", fakeResolver{}); got != "10" {
		t.Errorf("Group(id) = %q", got)
	}
}

func TestPermissions(t *testing.T) {
	tests := []struct {
		name  string
		mode  uint32
		style string
		want  string
	}{
		{"regular file", unix.S_IFREG | 0o644, "symbolic", ".rw-r--r--"},
		{"directory", unix.S_IFDIR | 0o755, "symbolic", "drwxr-xr-x"},
		{"symlink", unix.S_IFLNK | 0o777, "symbolic", "lrwxrwxrwx"},
		{"setuid executable", unix.S_IFREG | unix.S_ISUID | 0o755, "symbolic", ".rwsr-xr-x"},
		{"setuid without execute", unix.S_IFREG | unix.S_ISUID | 0o644, "symbolic", ".rwSr--r--"},
		{"sticky directory", unix.S_IFDIR | unix.S_ISVTX | 0o777, "symbolic", "drwxrwxrwt"},
		{"octal", unix.S_IFREG | 0o644, "octal", "0644"},
		{"octal setuid", unix.S_IFREG | unix.S_ISUID | 0o755, "octal", "4755"},
		{"hex", unix.S_IFREG | 0o644, "hex", "1a4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := &models.Metadata{Ok: true, Mode: tt.mode}
			if got := Permissions(meta, tt.style); got != tt.want {
				t.Errorf("Permissions(%o, %q) = %q, want %q", tt.mode, tt.style, got, tt.want)
			}
		})
	}
}

func TestPermissionIndicators(t *testing.T) {
	meta := &models.Metadata{Ok: true, Mode: unix.S_IFREG | 0o644, Xattr: models.PresenceYes}
	if got := Permissions(meta, "symbolic"); got != ".rw-r--r--@" {
		t.Errorf("xattr indicator: got %q", got)
	}

	meta = &models.Metadata{Ok: true, Mode: unix.S_IFREG | 0o644, ACL: models.PresenceYes}
	if got := Permissions(meta, "symbolic"); got != ".rw-r--r--+" {
		t.Errorf("acl indicator: got %q", got)
	}

	// The xattr indicator takes precedence when both are present
	meta = &models.Metadata{
		Ok:    true,
		Mode:  unix.S_IFREG | 0o644,
		Xattr: models.PresenceYes,
		ACL:   models.PresenceYes,
	}
	if got := Permissions(meta, "symbolic"); got != ".rw-r--r--@" {
		t.Errorf("combined indicators: got %q", got)
	}
}
