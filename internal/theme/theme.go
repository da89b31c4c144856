// Package theme styles listing output. A single Theme is built at startup
// from the colour and icon settings and injected into every renderer, so
// the when-to-colour decision is made exactly once.
package theme

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/rly0nheart/cerium/pkg/models"
)

// Theme holds the resolved colour and icon settings for one invocation
type Theme struct {
	colours    bool
	icons      bool
	hyperlinks bool
	hostname   string

	dir       lipgloss.Style
	symlink   lipgloss.Style
	broken    lipgloss.Style
	other     lipgloss.Style
	header    lipgloss.Style
	connector lipgloss.Style
	summary   lipgloss.Style
}

// New resolves the colour, icon, and hyperlink settings.
// auto enables the feature only when stdout is a terminal.
func New(colours, icons, hyperlink string) *Theme {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	hostname, _ := os.Hostname()

	return &Theme{
		colours:    colours == "always" || (colours == "auto" && tty),
		icons:      icons == "always" || (icons == "auto" && tty),
		hyperlinks: hyperlink == "always" || (hyperlink == "auto" && tty),
		hostname:   hostname,
		dir:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		symlink:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		broken:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		other:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		header:    lipgloss.NewStyle().Bold(true).Underline(true),
		connector: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		summary:   lipgloss.NewStyle().Faint(true),
	}
}

// Plain creates a theme with colours and icons disabled, used in tests
// and for piped output
func Plain() *Theme {
	return &Theme{}
}

// Name styles an entry's display name by kind
func (t *Theme) Name(e *models.Entry, text string) string {
	if !t.colours {
		return text
	}
	switch {
	case e.Broken:
		return t.broken.Render(text)
	case e.Kind == models.KindDir:
		return t.dir.Render(text)
	case e.Kind == models.KindSymlink:
		return t.symlink.Render(text)
	case e.Kind == models.KindOther:
		return t.other.Render(text)
	}
	return text
}

// Icon returns the glyph prefix for an entry, empty when icons are off.
// The returned string includes the trailing space separator.
func (t *Theme) Icon(e *models.Entry) string {
	if !t.icons {
		return ""
	}
	switch e.Kind {
	case models.KindDir:
		return " " // folder
	case models.KindSymlink:
		return " " // link
	case models.KindOther:
		return " " // gear
	}
	if glyph, ok := extIcons[e.Extension()]; ok {
		return glyph + " "
	}
	return " " // generic file
}

// Hyperlink wraps already styled text in an OSC 8 file hyperlink when
// hyperlinks are enabled. The escape sequences carry no printed width.
func (t *Theme) Hyperlink(path, text string) string {
	if !t.hyperlinks {
		return text
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return text
	}
	uri := "file://" + t.hostname + (&url.URL{Path: abs}).EscapedPath()
	return "\x1b]8;;" + uri + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// PathHeader styles the "path:" section title printed between levels
func (t *Theme) PathHeader(text string) string {
	if !t.colours {
		return text
	}
	return t.dir.Render(text)
}

// TableHeader styles a column header
func (t *Theme) TableHeader(text string) string {
	if !t.colours {
		return text
	}
	return t.header.Render(text)
}

// Connector styles the box-drawing connectors in tree output
func (t *Theme) Connector(text string) string {
	if !t.colours {
		return text
	}
	return t.connector.Render(text)
}

// Summary styles the trailing counts line
func (t *Theme) Summary(text string) string {
	if !t.colours {
		return text
	}
	return t.summary.Render(text)
}

// extIcons maps common extensions to nerd-font glyphs
var extIcons = map[string]string{
	"go":   "",
	"rs":   "",
	"py":   "",
	"js":   "",
	"ts":   "",
	"c":    "",
	"h":    "",
	"md":   "",
	"json": "",
	"toml": "",
	"yaml": "",
	"yml":  "",
	"sh":   "",
	"zip":  "",
	"gz":   "",
	"tar":  "",
	"png":  "",
	"jpg":  "",
	"gif":  "",
	"pdf":  "",
	"txt":  "",
}
