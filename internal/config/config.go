package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rly0nheart/cerium/pkg/models"
)

// Config represents the resolved listing configuration.
// Values come from defaults, then the optional TOML config file, then
// CERIUM_* environment variables; CLI flags override all of them.
type Config struct {
	// Traversal settings
	Path        string   `mapstructure:"path"`         // root path to list
	All         bool     `mapstructure:"all"`          // include entries starting with `.`
	Dirs        bool     `mapstructure:"dirs"`         // only show directories
	Files       bool     `mapstructure:"files"`        // only show files
	Hide        []string `mapstructure:"hide"`         // glob patterns to omit from output
	Find        string   `mapstructure:"find"`         // search query, empty disables search
	Prune       bool     `mapstructure:"prune"`        // omit directories with no surviving content
	Recursive   bool     `mapstructure:"recursive"`    // list subdirectories recursively
	Tree        bool     `mapstructure:"tree"`         // hierarchical tree view
	MaxDepth    int      `mapstructure:"max_depth"`    // recursion depth limit, 0 = unlimited
	Dereference bool     `mapstructure:"dereference"`  // stat symlink targets instead of links
	Sort        string   `mapstructure:"sort"`         // name, size, created, accessed, modified, extension, inode
	Reverse     bool     `mapstructure:"reverse"`      // reverse order while sorting

	// Column settings
	Long        bool   `mapstructure:"long"`         // permissions, size, user, modified
	Oneline     bool   `mapstructure:"oneline"`      // one entry per line
	Size        bool   `mapstructure:"size"`         // size column
	TrueSize    bool   `mapstructure:"true_size"`    // aggregate directory sizes from contents
	Permission  bool   `mapstructure:"permission"`   // permissions column
	User        bool   `mapstructure:"user"`         // user column
	Group       bool   `mapstructure:"group"`        // group column
	Created     bool   `mapstructure:"created"`      // creation date column
	Modified    bool   `mapstructure:"modified"`     // modification date column
	Accessed    bool   `mapstructure:"accessed"`     // access date column
	Inode       bool   `mapstructure:"inode"`        // inode column
	HardLinks   bool   `mapstructure:"hard_links"`   // hard link count column
	Blocks      bool   `mapstructure:"blocks"`       // block count column
	BlockSize   bool   `mapstructure:"block_size"`   // block size column
	Xattr       bool   `mapstructure:"xattr"`        // extended attribute indicator column
	ACL         bool   `mapstructure:"acl"`          // ACL indicator column
	Context     bool   `mapstructure:"context"`      // SELinux security context column
	Mountpoint  bool   `mapstructure:"mountpoint"`   // filesystem mount point column
	Checksum    string `mapstructure:"checksum"`     // hash algorithm, empty disables the column
	ContentType bool   `mapstructure:"content_type"` // detected content type column
	Headers     bool   `mapstructure:"headers"`      // show column headers

	// Display settings
	QuoteName string `mapstructure:"quote_name"` // auto, single, double, never
	Colours   string `mapstructure:"colours"`    // always, auto, never
	Icons     string `mapstructure:"icons"`      // always, auto, never
	Hyperlink string `mapstructure:"hyperlink"`  // always, auto, never
	Width     int    `mapstructure:"width"`      // output width, 0 = no limit, -1 = terminal

	// Formatting settings
	DateFormat       string `mapstructure:"date_format"`       // locale, humanly, timestamp
	NumberFormat     string `mapstructure:"number_format"`     // humanly, natural
	OwnershipFormat  string `mapstructure:"ownership_format"`  // name, id
	PermissionFormat string `mapstructure:"permission_format"` // symbolic, octal, hex
	SizeFormat       string `mapstructure:"size_format"`       // bytes, binary, decimal

	Verbose bool `mapstructure:"verbose"` // development logging
}

// LoadConfig loads configuration from defaults, the optional config file,
// and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("path", ".")
	v.SetDefault("sort", "name")
	v.SetDefault("quote_name", "auto")
	v.SetDefault("colours", "auto")
	v.SetDefault("icons", "never")
	v.SetDefault("hyperlink", "never")
	v.SetDefault("width", -1)
	v.SetDefault("max_depth", 0)
	v.SetDefault("date_format", "locale")
	v.SetDefault("number_format", "humanly")
	v.SetDefault("ownership_format", "name")
	v.SetDefault("permission_format", "symbolic")
	v.SetDefault("size_format", "decimal")
	v.SetDefault("hide", []string{})

	// Optional config file: ~/.config/cerium/cerium.toml
	v.SetConfigName("cerium")
	v.SetConfigType("toml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "cerium"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, a malformed one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("CERIUM")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every enum-valued setting holds a known value
func (c *Config) Validate() error {
	if _, err := models.ParseSortBy(c.Sort); err != nil {
		return err
	}

	enums := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"quote-name", c.QuoteName, []string{"auto", "single", "double", "never"}},
		{"colours", c.Colours, []string{"always", "auto", "never"}},
		{"icons", c.Icons, []string{"always", "auto", "never"}},
		{"hyperlink", c.Hyperlink, []string{"always", "auto", "never"}},
		{"date-format", c.DateFormat, []string{"locale", "humanly", "timestamp"}},
		{"number-format", c.NumberFormat, []string{"humanly", "natural"}},
		{"ownership-format", c.OwnershipFormat, []string{"name", "id"}},
		{"permission-format", c.PermissionFormat, []string{"symbolic", "octal", "hex"}},
		{"size-format", c.SizeFormat, []string{"bytes", "binary", "decimal"}},
		{"checksum", c.Checksum, []string{"", "crc32", "md5", "sha224", "sha256", "sha384", "sha512", "xxh64"}},
	}

	for _, e := range enums {
		valid := false
		for _, a := range e.allowed {
			if e.value == a {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid value for --%s: %q", e.name, e.value)
		}
	}

	if c.Tree && c.Recursive {
		return fmt.Errorf("--tree and --recursive cannot be combined")
	}
	if c.Tree && c.Find != "" {
		return fmt.Errorf("--tree and --find cannot be combined")
	}
	if c.Dirs && c.Files {
		return fmt.Errorf("--dirs and --files cannot be combined")
	}
	if c.Width < -1 {
		return fmt.Errorf("--width must be -1 (terminal), 0 (no limit), or positive")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("--max-depth must be non-negative")
	}

	return nil
}

// SortKey returns the parsed sort key. Validate must have passed.
func (c *Config) SortKey() models.SortBy {
	key, _ := models.ParseSortBy(c.Sort)
	return key
}

// WantsMetadata reports whether any requested column or sort key needs a
// stat call. When false, traversal never touches metadata.
func (c *Config) WantsMetadata() bool {
	if c.Long || c.Size || c.TrueSize || c.Permission || c.User || c.Group ||
		c.Created || c.Modified || c.Accessed || c.Inode ||
		c.HardLinks || c.Blocks || c.BlockSize {
		return true
	}
	return c.SortKey().NeedsMetadata()
}

// WantsTableColumn reports whether any table-only column is requested.
// These force the list renderer even without stat-backed metadata.
func (c *Config) WantsTableColumn() bool {
	return c.Oneline || c.Xattr || c.ACL || c.Context || c.Mountpoint ||
		c.Checksum != "" || c.ContentType
}
