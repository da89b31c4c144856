package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rly0nheart/cerium/internal/config"
	"github.com/rly0nheart/cerium/internal/display"
	"github.com/rly0nheart/cerium/internal/fsys"
	"github.com/rly0nheart/cerium/internal/theme"
)

const version = "1.0.0"

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "cerium [path]",
	Short:   "A modern directory lister",
	Long:    "cerium lists directory contents with grids, tables, and trees",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()

	// Traversal
	flags.BoolP("all", "a", false, "don't ignore entries starting with .")
	flags.BoolP("dirs", "d", false, "only show directories")
	flags.BoolP("files", "f", false, "only show files")
	flags.StringSlice("hide", nil, "omit entries matching the given glob patterns")
	flags.String("find", "", "find entries that match a query")
	flags.Bool("prune", false, "omit empty directories from output")
	flags.BoolP("recursive", "R", false, "list subdirectories recursively")
	flags.BoolP("tree", "t", false, "display directories hierarchically")
	flags.Int("max-depth", 0, "limit recursion depth (0 = unlimited)")
	flags.BoolP("dereference", "L", false, "show metadata of symlink targets instead of links")
	flags.String("sort", "name", "sort entries by: name, size, created, accessed, modified, extension, inode")
	flags.BoolP("reverse", "r", false, "reverse order while sorting")

	// Columns
	flags.BoolP("long", "l", false, "long listing: permissions, size, user, and modified date")
	flags.BoolP("oneline", "1", false, "display one entry per line")
	flags.BoolP("size", "s", false, "display this entry's size")
	flags.BoolP("true-size", "S", false, "display true size of directories based on their contents")
	flags.BoolP("permission", "p", false, "this entry's permissions")
	flags.BoolP("user", "u", false, "display this entry's user")
	flags.BoolP("group", "g", false, "display this entry's group")
	flags.BoolP("created", "c", false, "this entry's creation date")
	flags.BoolP("modified", "m", false, "this entry's last modification date")
	flags.Bool("accessed", false, "this entry's last accessed date")
	flags.BoolP("inode", "i", false, "display inode number")
	flags.Bool("hard-links", false, "display number of hard links")
	flags.BoolP("blocks", "b", false, "display number of blocks")
	flags.BoolP("block-size", "B", false, "display block size")
	flags.BoolP("xattr", "x", false, "display extended attribute indicator")
	flags.Bool("acl", false, "display ACL indicator")
	flags.BoolP("context", "Z", false, "display SELinux security context")
	flags.Bool("mountpoint", false, "display filesystem mount point indicator")
	flags.String("checksum", "", "display checksum: crc32, md5, sha224, sha256, sha384, sha512, xxh64")
	flags.Bool("content-type", false, "display detected content type")
	flags.BoolP("headers", "H", false, "show column headers")

	// Display
	flags.StringP("quote-name", "Q", "auto", "how to quote entry names: auto, single, double, never")
	flags.StringP("colours", "C", "auto", "enable colours: always, auto, never")
	flags.StringP("icons", "I", "never", "show icons: always, auto, never")
	flags.String("hyperlink", "never", "hyperlink entry names: always, auto, never")
	flags.IntP("width", "w", -1, "set output width (0 = no limit)")

	// Formatting
	flags.String("date-format", "locale", "how to display dates: locale, humanly, timestamp")
	flags.String("number-format", "humanly", "how to display numbers: humanly, natural")
	flags.String("ownership-format", "name", "how to display users and groups: name, id")
	flags.String("permission-format", "symbolic", "how to display permissions: symbolic, octal, hex")
	flags.String("size-format", "decimal", "how to display sizes: bytes, binary, decimal")

	flags.BoolP("verbose", "v", false, "verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	mergeFlags(cmd, cfg)
	if len(args) > 0 {
		cfg.Path = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger = initLogger(cfg.Verbose)
	defer logger.Sync()

	th := theme.New(cfg.Colours, cfg.Icons, cfg.Hyperlink)
	resolver := fsys.NewResolver(cfg.Dereference, logger)
	cache := fsys.NewCache()
	traverser := fsys.NewTraverser(cfg, logger, resolver, cache)

	mode, err := display.Select(cfg, th, traverser, logger)
	if err != nil {
		return err
	}

	return mode.Render(os.Stdout)
}

// mergeFlags copies explicitly set flags over the loaded configuration,
// so CLI flags beat the config file and environment
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	bools := map[string]*bool{
		"all":          &cfg.All,
		"dirs":         &cfg.Dirs,
		"files":        &cfg.Files,
		"prune":        &cfg.Prune,
		"recursive":    &cfg.Recursive,
		"tree":         &cfg.Tree,
		"dereference":  &cfg.Dereference,
		"reverse":      &cfg.Reverse,
		"long":         &cfg.Long,
		"oneline":      &cfg.Oneline,
		"size":         &cfg.Size,
		"true-size":    &cfg.TrueSize,
		"permission":   &cfg.Permission,
		"user":         &cfg.User,
		"group":        &cfg.Group,
		"created":      &cfg.Created,
		"modified":     &cfg.Modified,
		"accessed":     &cfg.Accessed,
		"inode":        &cfg.Inode,
		"hard-links":   &cfg.HardLinks,
		"blocks":       &cfg.Blocks,
		"block-size":   &cfg.BlockSize,
		"xattr":        &cfg.Xattr,
		"acl":          &cfg.ACL,
		"context":      &cfg.Context,
		"mountpoint":   &cfg.Mountpoint,
		"content-type": &cfg.ContentType,
		"headers":      &cfg.Headers,
		"verbose":      &cfg.Verbose,
	}
	for name, target := range bools {
		if flags.Changed(name) {
			*target, _ = flags.GetBool(name)
		}
	}

	strs := map[string]*string{
		"find":              &cfg.Find,
		"sort":              &cfg.Sort,
		"checksum":          &cfg.Checksum,
		"quote-name":        &cfg.QuoteName,
		"colours":           &cfg.Colours,
		"icons":             &cfg.Icons,
		"hyperlink":         &cfg.Hyperlink,
		"date-format":       &cfg.DateFormat,
		"number-format":     &cfg.NumberFormat,
		"ownership-format":  &cfg.OwnershipFormat,
		"permission-format": &cfg.PermissionFormat,
		"size-format":       &cfg.SizeFormat,
	}
	for name, target := range strs {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}

	ints := map[string]*int{
		"max-depth": &cfg.MaxDepth,
		"width":     &cfg.Width,
	}
	for name, target := range ints {
		if flags.Changed(name) {
			*target, _ = flags.GetInt(name)
		}
	}

	if flags.Changed("hide") {
		cfg.Hide, _ = flags.GetStringSlice("hide")
	}
}

// initLogger creates the zap logger: development output when verbose,
// otherwise errors only so listings stay clean
func initLogger(verbose bool) *zap.Logger {
	if verbose {
		l, _ := zap.NewDevelopment()
		return l
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	l, _ := cfg.Build()
	return l
}
