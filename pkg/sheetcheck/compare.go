package sheetcheck

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/models"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/reader"
)

// CompareGrids walks two aligned grids over the given window and returns
// every mismatching cell pair in row-major order. The window's start
// coordinates locate the grids within their sheets for reporting; both grids
// are expected to already begin at the window origin (see reader.Grid.Window).
// An empty result means full agreement.
func CompareGrids(manual, auto reader.Grid, sheet string, window models.Region, opts Options) []models.Mismatch {
	places := opts.DecimalPlaces()
	var mismatches []models.Mismatch
	for r := 0; r < window.Rows; r++ {
		for c := 0; c < window.Cols; c++ {
			mv := manual.At(r, c)
			av := auto.At(r, c)
			nm := Normalize(mv, places)
			na := Normalize(av, places)
			if nm == na {
				continue
			}
			row := window.StartRow + r
			col := window.StartCol + c
			cell, _ := excelize.CoordinatesToCellName(col, row)
			mismatches = append(mismatches, models.Mismatch{
				Sheet:      sheet,
				Cell:       cell,
				Row:        row,
				Col:        col,
				RegionRow:  r,
				RegionCol:  c,
				Manual:     mv,
				Auto:       av,
				ManualNorm: nm,
				AutoNorm:   na,
			})
			if opts.FailFast {
				return mismatches
			}
		}
	}
	return mismatches
}

// validateWindow rejects non-positive window parameters before any file I/O.
func validateWindow(w models.Region) error {
	checks := []struct {
		param string
		value int
	}{
		{"start row", w.StartRow},
		{"start col", w.StartCol},
		{"rows", w.Rows},
		{"cols", w.Cols},
	}
	for _, c := range checks {
		if c.value < 1 {
			return &InvalidRegionError{Param: c.param, Value: c.value}
		}
	}
	return nil
}

// openWorkbook opens a workbook for reading, mapping a missing path to
// ErrFileNotFound.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return excelize.OpenFile(path)
}
