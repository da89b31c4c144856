package display

import (
	"fmt"
	"io"
	"strings"
)

// gridSeparator is the space between grid columns
const gridSeparator = 2

// gridCell is one measured grid cell. Width is the printed width, which
// differs from len(text) for styled or wide-rune content.
type gridCell struct {
	text  string
	width int
}

// gridLayout is a computed column arrangement. Cells flow top to bottom
// within a column, then left to right across columns.
type gridLayout struct {
	columns int
	rows    int
	widths  []int
}

// fitGrid finds the largest column count whose total width, separators
// included, fits the available width. One column always fits, however
// narrow the terminal. A non-positive available width means no limit and
// lays every cell out on a single row.
func fitGrid(cells []gridCell, available int) gridLayout {
	if len(cells) == 0 {
		return gridLayout{}
	}
	if available <= 0 {
		return layoutColumns(cells, len(cells))
	}

	best := layoutColumns(cells, 1)
	for columns := 2; columns <= len(cells); columns++ {
		candidate := layoutColumns(cells, columns)
		if candidate.totalWidth() > available {
			// Wider layouts only grow from here
			break
		}
		if candidate.rows == best.rows {
			// An extra column that saves no rows only leaves a hole
			continue
		}
		best = candidate
	}
	return best
}

// layoutColumns arranges the cells into a fixed column count and records
// each column's width as the maximum cell width it holds
func layoutColumns(cells []gridCell, columns int) gridLayout {
	rows := (len(cells) + columns - 1) / columns
	widths := make([]int, columns)
	for i, cell := range cells {
		col := i / rows
		if cell.width > widths[col] {
			widths[col] = cell.width
		}
	}
	return gridLayout{columns: columns, rows: rows, widths: widths}
}

// totalWidth is the content width plus separators
func (g gridLayout) totalWidth() int {
	total := 0
	for _, w := range g.widths {
		total += w
	}
	if g.columns > 1 {
		total += gridSeparator * (g.columns - 1)
	}
	return total
}

// render writes the grid row by row. The last cell on each line is never
// padded, and trailing whitespace is trimmed.
func (g gridLayout) render(w io.Writer, cells []gridCell) error {
	separator := strings.Repeat(" ", gridSeparator)

	for row := 0; row < g.rows; row++ {
		var parts []string
		for col := 0; col < g.columns; col++ {
			index := col*g.rows + row
			if index >= len(cells) {
				break
			}
			cell := cells[index]

			next := (col+1)*g.rows + row
			if col == g.columns-1 || next >= len(cells) {
				parts = append(parts, cell.text)
				continue
			}
			padding := g.widths[col] - cell.width
			if padding < 0 {
				padding = 0
			}
			parts = append(parts, cell.text+strings.Repeat(" ", padding))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, separator), " ")); err != nil {
			return err
		}
	}
	return nil
}
