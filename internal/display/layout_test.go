package display

import (
	"strings"
	"testing"
)

func cellsOf(texts ...string) []gridCell {
	cells := make([]gridCell, len(texts))
	for i, text := range texts {
		cells[i] = gridCell{text: text, width: len(text)}
	}
	return cells
}

func TestFitGrid(t *testing.T) {
	names := cellsOf("archive.tar.gz", "build_script.sh", "changelog.md", "dockerfile.txt", "example.json")

	tests := []struct {
		name        string
		cells       []gridCell
		available   int
		wantColumns int
		wantRows    int
	}{
		// Three 15-wide columns plus separators need 49 cells of width
		{"two columns at 40", names, 40, 2, 3},
		{"three columns at 49", names, 49, 3, 2},
		{"one column when narrow", names, 10, 1, 5},
		{"unlimited is one row", names, 0, 5, 1},
		{"single cell", cellsOf("a"), 80, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitGrid(tt.cells, tt.available)
			if got.columns != tt.wantColumns || got.rows != tt.wantRows {
				t.Errorf("fitGrid(available=%d) = %dx%d, want %dx%d columns x rows",
					tt.available, got.columns, got.rows, tt.wantColumns, tt.wantRows)
			}
		})
	}
}

func TestFitGridEmpty(t *testing.T) {
	got := fitGrid(nil, 80)
	if got.columns != 0 || got.rows != 0 {
		t.Errorf("fitGrid(nil) = %dx%d, want empty layout", got.columns, got.rows)
	}
}

func TestGridRenderColumnFirst(t *testing.T) {
	cells := cellsOf("a", "b", "c", "d", "e", "f")

	var buf strings.Builder
	layout := fitGrid(cells, 7)
	if layout.columns != 3 || layout.rows != 2 {
		t.Fatalf("fitGrid() = %dx%d, want 3x2", layout.columns, layout.rows)
	}
	if err := layout.render(&buf, cells); err != nil {
		t.Fatal(err)
	}

	// Cells flow down each column, then across
	want := "a  c  e\nb  d  f\n"
	if buf.String() != want {
		t.Errorf("render() = %q, want %q", buf.String(), want)
	}
}

func TestGridRenderPadding(t *testing.T) {
	cells := cellsOf("aa", "b", "cccc", "d")

	var buf strings.Builder
	layout := layoutColumns(cells, 2)
	if err := layout.render(&buf, cells); err != nil {
		t.Fatal(err)
	}

	// The first column pads to its widest cell; the last cell on each
	// line stays unpadded
	want := "aa  cccc\nb   d\n"
	if buf.String() != want {
		t.Errorf("render() = %q, want %q", buf.String(), want)
	}
}

func TestGridRenderRaggedLastColumn(t *testing.T) {
	cells := cellsOf("a", "b", "c", "d", "e")

	var buf strings.Builder
	layout := layoutColumns(cells, 3)
	if err := layout.render(&buf, cells); err != nil {
		t.Fatal(err)
	}

	// Five cells in three columns leave the last column one cell short
	want := "a  c  e\nb  d\n"
	if buf.String() != want {
		t.Errorf("render() = %q, want %q", buf.String(), want)
	}
}
