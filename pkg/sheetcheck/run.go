package sheetcheck

import (
	"github.com/sheetcheck/sheetcheck/internal/logger"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/models"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/reader"
)

// CompareWorkbooks compares the same rectangular window across a list of
// sheets present under identical names in both workbooks. Sheets are
// processed in order; a sheet missing from either workbook aborts the run
// with a SheetNotFoundError, and the partial result is returned alongside the
// error so sheets already matched can still be reported.
func CompareWorkbooks(manualPath, autoPath string, sheets []string, window models.Region, opts Options) (*models.RunResult, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	manual, err := openWorkbook(manualPath)
	if err != nil {
		return nil, err
	}
	defer manual.Close()

	auto, err := openWorkbook(autoPath)
	if err != nil {
		return nil, err
	}
	defer auto.Close()

	result := &models.RunResult{
		ManualPath: manualPath,
		AutoPath:   autoPath,
		Window:     window,
	}

	for _, sheet := range sheets {
		if !reader.HasSheet(manual, sheet) {
			return result, &SheetNotFoundError{Workbook: "manual", Sheet: sheet, Available: manual.GetSheetList()}
		}
		if !reader.HasSheet(auto, sheet) {
			return result, &SheetNotFoundError{Workbook: "auto", Sheet: sheet, Available: auto.GetSheetList()}
		}

		mGrid, err := reader.LoadSheet(manual, sheet)
		if err != nil {
			return result, err
		}
		aGrid, err := reader.LoadSheet(auto, sheet)
		if err != nil {
			return result, err
		}

		logger.Debug("comparing sheet", "sheet", sheet,
			"rows", window.Rows, "cols", window.Cols,
			"start_row", window.StartRow, "start_col", window.StartCol)

		mismatches := CompareGrids(
			mGrid.Window(window.StartRow, window.StartCol, window.Rows, window.Cols),
			aGrid.Window(window.StartRow, window.StartCol, window.Rows, window.Cols),
			sheet, window, opts,
		)
		result.Sheets = append(result.Sheets, models.SheetResult{
			Sheet:      sheet,
			Matched:    len(mismatches) == 0,
			Mismatches: mismatches,
		})
		if len(mismatches) > 0 && opts.FailFast {
			break
		}
	}

	return result, nil
}
