package sheetcheck

import (
	"github.com/xuri/excelize/v2"

	"github.com/sheetcheck/sheetcheck/internal/logger"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/models"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/reader"
)

// WalkConfig describes a sequential row-by-row comparison of one manual
// sheet against one auto sheet. The two sides have independent first data
// rows; Offset skips rows already verified in a previous run on both sides
// at once, so start row 8 with offset 3 walks the same pairs as start row 11
// with offset 0.
type WalkConfig struct {
	ManualPath  string
	ManualSheet string
	AutoPath    string
	AutoSheet   string
	// Cols is the number of leading columns compared per row.
	Cols int
	// ManualStart is the first data row in the manual sheet (1-based).
	ManualStart int
	// AutoStart is the first data row in the auto sheet (1-based).
	AutoStart int
	// Offset is the zero-based additional row skip applied to both sides.
	Offset int
}

func (c WalkConfig) validate() error {
	if c.Cols < 1 {
		return &InvalidRegionError{Param: "num-cols", Value: c.Cols}
	}
	if c.ManualStart < 1 {
		return &InvalidRegionError{Param: "manual-start", Value: c.ManualStart}
	}
	if c.AutoStart < 1 {
		return &InvalidRegionError{Param: "auto-start", Value: c.AutoStart}
	}
	if c.Offset < 0 {
		return &InvalidRegionError{Param: "offset", Value: c.Offset}
	}
	return nil
}

// CompareSequential walks the two sheets row pair by row pair, comparing the
// first Cols cells of manual row (ManualStart+Offset+k) against auto row
// (AutoStart+Offset+k). The walk ends at the first row pair where either
// side's compared cells are all blank (end-of-data). Rows beyond a sheet's
// populated extent read as blank, so the walk always terminates.
func CompareSequential(cfg WalkConfig, opts Options) (*models.WalkResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	manual, err := openWorkbook(cfg.ManualPath)
	if err != nil {
		return nil, err
	}
	defer manual.Close()

	auto, err := openWorkbook(cfg.AutoPath)
	if err != nil {
		return nil, err
	}
	defer auto.Close()

	if !reader.HasSheet(manual, cfg.ManualSheet) {
		return nil, &SheetNotFoundError{Workbook: "manual", Sheet: cfg.ManualSheet, Available: manual.GetSheetList()}
	}
	if !reader.HasSheet(auto, cfg.AutoSheet) {
		return nil, &SheetNotFoundError{Workbook: "auto", Sheet: cfg.AutoSheet, Available: auto.GetSheetList()}
	}

	mGrid, err := reader.LoadSheet(manual, cfg.ManualSheet)
	if err != nil {
		return nil, err
	}
	aGrid, err := reader.LoadSheet(auto, cfg.AutoSheet)
	if err != nil {
		return nil, err
	}

	places := opts.DecimalPlaces()
	result := &models.WalkResult{
		ManualSheet: cfg.ManualSheet,
		AutoSheet:   cfg.AutoSheet,
		StartOffset: cfg.Offset,
		FinalOffset: cfg.Offset,
	}

	for k := 0; ; k++ {
		mRow := cfg.ManualStart + cfg.Offset + k
		aRow := cfg.AutoStart + cfg.Offset + k
		mRaw := mGrid.Row(mRow, cfg.Cols)
		aRaw := aGrid.Row(aRow, cfg.Cols)
		mVals := normalizeRow(mRaw, places)
		aVals := normalizeRow(aRaw, places)

		if isBlankRow(mVals) || isBlankRow(aVals) {
			result.FinalOffset = cfg.Offset + k
			break
		}

		rowMatched := true
		for c := 0; c < cfg.Cols; c++ {
			if mVals[c] == aVals[c] {
				continue
			}
			rowMatched = false
			cell, _ := excelize.CoordinatesToCellName(c+1, mRow)
			result.Mismatches = append(result.Mismatches, models.Mismatch{
				Sheet:      cfg.ManualSheet,
				Cell:       cell,
				Row:        mRow,
				Col:        c + 1,
				RegionRow:  k,
				RegionCol:  c,
				Manual:     mRaw[c],
				Auto:       aRaw[c],
				ManualNorm: mVals[c],
				AutoNorm:   aVals[c],
			})
		}

		if rowMatched {
			result.RowsCompared++
			if result.RowsCompared%10 == 0 {
				logger.Debug("walk progress", "rows_compared", result.RowsCompared,
					"offset", cfg.Offset+k+1)
			}
		} else if opts.FailFast {
			result.FinalOffset = cfg.Offset + k
			return result, nil
		}
	}

	return result, nil
}

func normalizeRow(vals []string, places int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = Normalize(v, places)
	}
	return out
}

func isBlankRow(normalized []string) bool {
	for _, v := range normalized {
		if v != "" {
			return false
		}
	}
	return true
}
