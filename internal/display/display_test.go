package display

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/rly0nheart/cerium/internal/config"
	"github.com/rly0nheart/cerium/internal/fsys"
)

// setupTestDir builds the standard fixture:
// file1.txt, file2.rs, .hidden, subdir/{nested.txt, .hidden_nested}, empty_dir
func setupTestDir(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	for _, name := range []string{"file1.txt", "file2.rs", ".hidden"} {
		if err := os.WriteFile(filepath.Join(base, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(base, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"nested.txt", ".hidden_nested"} {
		if err := os.WriteFile(filepath.Join(base, "subdir", name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(base, "empty_dir"), 0o755); err != nil {
		t.Fatal(err)
	}

	return base
}

func testConfig() *config.Config {
	return &config.Config{
		Path:             ".",
		Sort:             "name",
		QuoteName:        "never",
		Colours:          "never",
		Icons:            "never",
		Hyperlink:        "never",
		DateFormat:       "locale",
		NumberFormat:     "humanly",
		OwnershipFormat:  "name",
		PermissionFormat: "symbolic",
		SizeFormat:       "bytes",
		Width:            0,
	}
}

func newTestTraverser(cfg *config.Config) *fsys.Traverser {
	logger := zap.NewNop()
	return fsys.NewTraverser(cfg, logger, fsys.NewResolver(cfg.Dereference, logger), fsys.NewCache())
}
