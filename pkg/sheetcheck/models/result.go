package models

// SheetResult represents the outcome of comparing one sheet pair.
type SheetResult struct {
	// Sheet is the sheet name (identical in both workbooks).
	Sheet string `json:"sheet"`
	// Matched reports whether the window agreed fully.
	Matched bool `json:"matched"`
	// Mismatches lists unequal cell pairs in row-major order.
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// RunResult represents a multi-sheet window comparison run.
type RunResult struct {
	// ManualPath is the reference workbook path.
	ManualPath string `json:"manual_path"`
	// AutoPath is the generated workbook path.
	AutoPath string `json:"auto_path"`
	// Window is the rectangular window applied to every sheet.
	Window Region `json:"window"`
	// Sheets holds per-sheet results in processing order.
	Sheets []SheetResult `json:"sheets"`
}

// MatchedSheets returns the names of sheets that agreed fully, in order.
func (r *RunResult) MatchedSheets() []string {
	var names []string
	for _, s := range r.Sheets {
		if s.Matched {
			names = append(names, s.Sheet)
		}
	}
	return names
}

// Mismatches returns all mismatches across sheets, in processing order.
func (r *RunResult) Mismatches() []Mismatch {
	var all []Mismatch
	for _, s := range r.Sheets {
		all = append(all, s.Mismatches...)
	}
	return all
}

// WalkResult represents a sequential row-by-row comparison run.
type WalkResult struct {
	// ManualSheet is the sheet name in the manual workbook.
	ManualSheet string `json:"manual_sheet"`
	// AutoSheet is the sheet name in the auto workbook.
	AutoSheet string `json:"auto_sheet"`
	// StartOffset is the offset the walk started from.
	StartOffset int `json:"start_offset"`
	// FinalOffset is the offset after the last row examined.
	FinalOffset int `json:"final_offset"`
	// RowsCompared is the number of fully matching row pairs.
	RowsCompared int `json:"rows_compared"`
	// Mismatches lists unequal cell pairs in row-major order. The manual-side
	// coordinates refer to the manual workbook; RegionRow is the offset of the
	// row relative to the walk's starting offset.
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// SortResult represents a workbook sort run.
type SortResult struct {
	// OutputPath is the workbook the sorted sheets were written to.
	OutputPath string `json:"output_path"`
	// Sorted lists sheets that were re-ordered.
	Sorted []string `json:"sorted,omitempty"`
	// Copied lists sheets written through unchanged.
	Copied []string `json:"copied,omitempty"`
	// Skipped lists target sheets left unchanged because the group column
	// was not found.
	Skipped []string `json:"skipped,omitempty"`
}
