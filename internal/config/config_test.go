package config

import (
	"testing"

	"github.com/rly0nheart/cerium/pkg/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Path != "." {
		t.Errorf("Path = %q, want %q", cfg.Path, ".")
	}
	if cfg.Sort != "name" {
		t.Errorf("Sort = %q, want %q", cfg.Sort, "name")
	}
	if cfg.QuoteName != "auto" {
		t.Errorf("QuoteName = %q, want %q", cfg.QuoteName, "auto")
	}
	if cfg.Width != -1 {
		t.Errorf("Width = %d, want -1", cfg.Width)
	}
	if cfg.SizeFormat != "decimal" {
		t.Errorf("SizeFormat = %q, want %q", cfg.SizeFormat, "decimal")
	}
	if cfg.All || cfg.Long || cfg.Tree || cfg.Recursive {
		t.Error("boolean flags should default to false")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Sort:             "name",
			QuoteName:        "auto",
			Colours:          "auto",
			Icons:            "never",
			Hyperlink:        "never",
			DateFormat:       "locale",
			NumberFormat:     "humanly",
			OwnershipFormat:  "name",
			PermissionFormat: "symbolic",
			SizeFormat:       "decimal",
			Width:            -1,
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"all enums at non-defaults", func(c *Config) {
			c.Sort = "inode"
			c.QuoteName = "double"
			c.DateFormat = "timestamp"
			c.PermissionFormat = "hex"
			c.SizeFormat = "binary"
			c.Checksum = "xxh64"
		}, false},
		{"unknown sort key", func(c *Config) { c.Sort = "colour" }, true},
		{"unknown quote style", func(c *Config) { c.QuoteName = "fancy" }, true},
		{"unknown date format", func(c *Config) { c.DateFormat = "iso" }, true},
		{"unknown checksum", func(c *Config) { c.Checksum = "sha1" }, true},
		{"tree with recursive", func(c *Config) { c.Tree = true; c.Recursive = true }, true},
		{"tree with find", func(c *Config) { c.Tree = true; c.Find = "x" }, true},
		{"dirs with files", func(c *Config) { c.Dirs = true; c.Files = true }, true},
		{"negative max depth", func(c *Config) { c.MaxDepth = -1 }, true},
		{"terminal width sentinel passes", func(c *Config) { c.Width = -1 }, false},
		{"width below sentinel", func(c *Config) { c.Width = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWantsMetadata(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   bool
	}{
		{"nothing requested", func(c *Config) {}, false},
		{"long listing", func(c *Config) { c.Long = true }, true},
		{"size column", func(c *Config) { c.Size = true }, true},
		{"ownership column", func(c *Config) { c.Group = true }, true},
		{"stat-backed sort", func(c *Config) { c.Sort = "modified" }, true},
		{"name sort stays cheap", func(c *Config) { c.Sort = "name" }, false},
		{"extension sort stays cheap", func(c *Config) { c.Sort = "extension" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Sort: "name"}
			tt.mutate(cfg)
			if got := cfg.WantsMetadata(); got != tt.want {
				t.Errorf("WantsMetadata() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortKey(t *testing.T) {
	cfg := &Config{Sort: "extension"}
	if got := cfg.SortKey(); got != models.SortExtension {
		t.Errorf("SortKey() = %v, want %v", got, models.SortExtension)
	}
}
