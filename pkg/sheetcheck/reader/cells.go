// Package reader loads rectangular cell regions from workbooks.
package reader

import (
	"slices"

	"github.com/xuri/excelize/v2"
)

// Grid holds raw cell values in row-major order. Rows may be ragged;
// access through At, which treats anything outside the populated extent
// as blank.
type Grid [][]string

// At returns the cell at a 0-based position, or the empty string when the
// position falls outside the grid. Out-of-range reads are deliberately
// lenient so a window larger than the populated extent still compares.
func (g Grid) At(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns the first cols values of a 1-based row, blanks filling any
// positions beyond the populated extent.
func (g Grid) Row(row, cols int) []string {
	vals := make([]string, cols)
	for c := 0; c < cols; c++ {
		vals[c] = g.At(row-1, c)
	}
	return vals
}

// Window copies a rectangular region out of the grid. startRow and startCol
// are 1-based; cells beyond the populated extent come back blank.
func (g Grid) Window(startRow, startCol, rows, cols int) Grid {
	out := make(Grid, rows)
	for r := 0; r < rows; r++ {
		row := make([]string, cols)
		for c := 0; c < cols; c++ {
			row[c] = g.At(startRow-1+r, startCol-1+c)
		}
		out[r] = row
	}
	return out
}

// LoadSheet reads a whole sheet into a Grid of formatted cell values.
func LoadSheet(f *excelize.File, sheet string) (Grid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return Grid(rows), nil
}

// HasSheet reports whether the workbook contains a sheet with the given name.
func HasSheet(f *excelize.File, name string) bool {
	return slices.Contains(f.GetSheetList(), name)
}
