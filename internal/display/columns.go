package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rly0nheart/cerium/internal/config"
	"github.com/rly0nheart/cerium/internal/format"
	"github.com/rly0nheart/cerium/internal/fsys"
	"github.com/rly0nheart/cerium/internal/provider"
	"github.com/rly0nheart/cerium/internal/theme"
	"github.com/rly0nheart/cerium/pkg/models"
)

// placeholder is rendered in metadata cells when the value is unavailable,
// either because the stat degraded or the probe never ran
const placeholder = "-"

// selectColumns derives the ordered column set from the configuration.
// The long flag expands first so individual flags only append what it did
// not already add; the name column always comes last except in tree output,
// where the name carries the connectors instead.
func selectColumns(cfg *config.Config) []models.Column {
	var columns []models.Column
	seen := make(map[models.Column]bool)

	add := func(c models.Column) {
		if !seen[c] {
			seen[c] = true
			columns = append(columns, c)
		}
	}

	if cfg.Long {
		add(models.ColPermissions)
		add(models.ColSize)
		add(models.ColUser)
		add(models.ColModified)
	}

	if cfg.Size {
		add(models.ColSize)
	}
	if cfg.Permission {
		add(models.ColPermissions)
	}
	if cfg.User {
		add(models.ColUser)
	}
	if cfg.Group {
		add(models.ColGroup)
	}
	if cfg.ContentType {
		add(models.ColContentType)
	}
	if cfg.Checksum != "" {
		add(models.ColChecksum)
	}
	if cfg.Xattr {
		add(models.ColXattr)
	}
	if cfg.ACL {
		add(models.ColACL)
	}
	if cfg.Context {
		add(models.ColContext)
	}
	if cfg.Mountpoint {
		add(models.ColMountpoint)
	}
	if cfg.Inode {
		add(models.ColInode)
	}
	if cfg.Blocks {
		add(models.ColBlocks)
	}
	if cfg.HardLinks {
		add(models.ColHardLinks)
	}
	if cfg.BlockSize {
		add(models.ColBlockSize)
	}
	if cfg.Created {
		add(models.ColCreated)
	}
	if cfg.Modified {
		add(models.ColModified)
	}
	if cfg.Accessed {
		add(models.ColAccessed)
	}

	if !cfg.Tree {
		add(models.ColName)
	}
	return columns
}

// rowRenderer turns entries into aligned table rows. It is shared by the
// list and tree renderers, which differ only in what surrounds the row.
type rowRenderer struct {
	cfg         *config.Config
	theme       *theme.Theme
	cache       *fsys.Cache
	logger      *zap.Logger
	columns     []models.Column
	checksum    *provider.Checksum
	contentType *provider.ContentType
}

func newRowRenderer(cfg *config.Config, th *theme.Theme, cache *fsys.Cache, logger *zap.Logger) *rowRenderer {
	r := &rowRenderer{
		cfg:     cfg,
		theme:   th,
		cache:   cache,
		logger:  logger,
		columns: selectColumns(cfg),
	}
	if cfg.Checksum != "" {
		// Validation already vetted the algorithm
		r.checksum, _ = provider.NewChecksum(cfg.Checksum)
	}
	if cfg.ContentType {
		r.contentType = provider.NewContentType()
	}
	return r
}

// widths computes each column's width as the maximum rendered width over
// the whole batch, headers included when they will be printed. This is
// what keeps every row in a batch aligned.
func (r *rowRenderer) widths(entries []models.Entry, alignQuotes bool) map[models.Column]int {
	widths := make(map[models.Column]int, len(r.columns))

	if r.cfg.Headers {
		for _, col := range r.columns {
			widths[col] = MeasureWidth(r.header(col))
		}
	}

	for i := range entries {
		for _, col := range r.columns {
			if w := MeasureWidth(r.cell(&entries[i], col, alignQuotes)); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}

// header returns the header text for a column, substituting the checksum
// algorithm name
func (r *rowRenderer) header(col models.Column) string {
	if col == models.ColChecksum && r.checksum != nil {
		return r.checksum.Header()
	}
	return col.Header()
}

// renderHeaders writes the header row
func (r *rowRenderer) renderHeaders(w io.Writer, widths map[models.Column]int) error {
	parts := make([]string, 0, len(r.columns))
	for _, col := range r.columns {
		text := r.header(col)
		styled := r.theme.TableHeader(text)
		parts = append(parts, pad(styled, MeasureWidth(styled), widths[col], col.RightAligned()))
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, " "), " "))
	return err
}

// renderRow writes one entry as an aligned row
func (r *rowRenderer) renderRow(w io.Writer, e *models.Entry, widths map[models.Column]int, alignQuotes bool) error {
	parts := make([]string, 0, len(r.columns))
	for _, col := range r.columns {
		cell := r.cell(e, col, alignQuotes)
		parts = append(parts, pad(cell, MeasureWidth(cell), widths[col], col.RightAligned()))
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, " "), " "))
	return err
}

// rowPrefix renders every column except the name, used by tree output
// where connectors sit between the columns and the name
func (r *rowRenderer) rowPrefix(e *models.Entry, widths map[models.Column]int) string {
	parts := make([]string, 0, len(r.columns))
	for _, col := range r.columns {
		cell := r.cell(e, col, false)
		parts = append(parts, pad(cell, MeasureWidth(cell), widths[col], col.RightAligned()))
	}
	return strings.Join(parts, " ")
}

// cell renders the value for one column of one entry
func (r *rowRenderer) cell(e *models.Entry, col models.Column, alignQuotes bool) string {
	if col == models.ColName {
		return r.styledName(e, alignQuotes)
	}

	meta := e.Meta
	statOK := meta != nil && meta.Ok

	switch col {
	case models.ColPermissions:
		if !statOK {
			return placeholder
		}
		key := fmt.Sprintf("perm:%o:%d:%d:%s", meta.Mode, meta.Xattr, meta.ACL, r.cfg.PermissionFormat)
		return r.cache.Memo(key, func() string {
			return format.Permissions(meta, r.cfg.PermissionFormat)
		})

	case models.ColSize:
		if e.Kind == models.KindDir {
			if !r.cfg.TrueSize {
				return placeholder
			}
			size := r.cache.TrueSize(e.Path, r.cfg.All)
			return r.formatSize(size)
		}
		if !statOK {
			return placeholder
		}
		return r.formatSize(meta.Size)

	case models.ColBlockSize:
		if !statOK {
			return placeholder
		}
		return r.formatSize(meta.BlockSize)

	case models.ColBlocks:
		if !statOK {
			return placeholder
		}
		return r.formatNumber(uint64(meta.Blocks))

	case models.ColHardLinks:
		if !statOK {
			return placeholder
		}
		return r.formatNumber(meta.Nlink)

	case models.ColUser:
		if !statOK {
			return placeholder
		}
		return format.User(meta.UID, r.cfg.OwnershipFormat, r.cache)

	case models.ColGroup:
		if !statOK {
			return placeholder
		}
		return format.Group(meta.GID, r.cfg.OwnershipFormat, r.cache)

	case models.ColCreated:
		if !statOK {
			return placeholder
		}
		return r.formatDate(meta.Changed)

	case models.ColModified:
		if !statOK {
			return placeholder
		}
		return r.formatDate(meta.Modified)

	case models.ColAccessed:
		if !statOK {
			return placeholder
		}
		return r.formatDate(meta.Accessed)

	case models.ColInode:
		if !statOK {
			return placeholder
		}
		return strconv.FormatUint(meta.Inode, 10)

	case models.ColXattr:
		if meta != nil && meta.Xattr == models.PresenceYes {
			return "@"
		}
		return placeholder

	case models.ColACL:
		if meta != nil && meta.ACL == models.PresenceYes {
			return "+"
		}
		return placeholder

	case models.ColContext:
		if meta != nil && meta.Context != "" {
			return meta.Context
		}
		return placeholder

	case models.ColMountpoint:
		if meta != nil && meta.Mounted == models.PresenceYes {
			return "yes"
		}
		return placeholder

	case models.ColChecksum:
		return r.provided(e, r.checksum, "checksum")

	case models.ColContentType:
		return r.provided(e, r.contentType, "type")
	}

	return placeholder
}

// provided runs a content provider for regular files, memoized per path
func (r *rowRenderer) provided(e *models.Entry, p provider.Provider, kind string) string {
	if p == nil || e.Kind != models.KindFile {
		return placeholder
	}
	return r.cache.Memo(kind+":"+e.Path, func() string {
		value, err := p.Compute(e.Path)
		if err != nil {
			r.logger.Warn("Provider failed",
				zap.String("provider", kind),
				zap.String("path", e.Path),
				zap.Error(err))
			return provider.Unavailable
		}
		return value
	})
}

// styledName renders the display name: icon, quoting, colour, hyperlink
func (r *rowRenderer) styledName(e *models.Entry, alignQuotes bool) string {
	name := Quote(e.DisplayName(), r.cfg.QuoteName, alignQuotes)
	return r.theme.Icon(e) + r.theme.Hyperlink(e.Path, r.theme.Name(e, name))
}

func (r *rowRenderer) formatSize(size int64) string {
	key := fmt.Sprintf("size:%d:%s", size, r.cfg.SizeFormat)
	return r.cache.Memo(key, func() string {
		return format.Size(size, r.cfg.SizeFormat)
	})
}

func (r *rowRenderer) formatNumber(n uint64) string {
	key := fmt.Sprintf("num:%d:%s", n, r.cfg.NumberFormat)
	return r.cache.Memo(key, func() string {
		return format.Number(n, r.cfg.NumberFormat)
	})
}

func (r *rowRenderer) formatDate(t time.Time) string {
	key := fmt.Sprintf("date:%d:%s", t.Unix(), r.cfg.DateFormat)
	return r.cache.Memo(key, func() string {
		return format.Date(t, r.cfg.DateFormat)
	})
}

// pad aligns text to width using its printed width, which may differ from
// its byte length when styled
func pad(text string, printed, width int, right bool) string {
	if printed >= width {
		return text
	}
	padding := strings.Repeat(" ", width-printed)
	if right {
		return padding + text
	}
	return text + padding
}
