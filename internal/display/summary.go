package display

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/rly0nheart/cerium/internal/theme"
	"github.com/rly0nheart/cerium/pkg/models"
)

// counter accumulates directory and file counts during rendering so the
// summary never re-reads the filesystem
type counter struct {
	dirs  int
	files int
}

// add counts one batch of entries. Symlinks count as files regardless of
// their target.
func (c *counter) add(entries []models.Entry) {
	for i := range entries {
		if entries[i].IsDir() {
			c.dirs++
		} else {
			c.files++
		}
	}
}

// text formats the counts, using singular forms and omitting zero parts.
// Both zero yields an empty string and no summary line.
func (c *counter) text() string {
	var dirs, files string
	switch {
	case c.dirs == 1:
		dirs = "1 directory"
	case c.dirs > 1:
		dirs = humanize.Comma(int64(c.dirs)) + " directories"
	}
	switch {
	case c.files == 1:
		files = "1 file"
	case c.files > 1:
		files = humanize.Comma(int64(c.files)) + " files"
	}

	switch {
	case dirs != "" && files != "":
		return dirs + " and " + files
	case dirs != "":
		return dirs
	default:
		return files
	}
}

// printSummary writes the trailing counts line preceded by a blank line
func (c *counter) printSummary(w io.Writer, th *theme.Theme) error {
	text := c.text()
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s.\n", th.Summary(text))
	return err
}
