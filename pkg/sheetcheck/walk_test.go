package sheetcheck

import (
	"errors"
	"fmt"
	"testing"
)

// walkFixtures writes a manual workbook with data rows starting at row 8 and
// an auto workbook with the same data starting at row 2, two columns wide.
func walkFixtures(t *testing.T, dir string, manualRows, autoRows [][2]interface{}) (string, string) {
	t.Helper()

	manualCells := map[string]interface{}{"A1": "Report", "A7": "Header"}
	for i, row := range manualRows {
		manualCells[fmt.Sprintf("A%d", 8+i)] = row[0]
		manualCells[fmt.Sprintf("B%d", 8+i)] = row[1]
	}
	autoCells := map[string]interface{}{"A1": "Header"}
	for i, row := range autoRows {
		autoCells[fmt.Sprintf("A%d", 2+i)] = row[0]
		autoCells[fmt.Sprintf("B%d", 2+i)] = row[1]
	}

	manualPath := writeWorkbook(t, dir, "manual.xlsx", []sheetFixture{{name: "M", cells: manualCells}})
	autoPath := writeWorkbook(t, dir, "auto.xlsx", []sheetFixture{{name: "A", cells: autoCells}})
	return manualPath, autoPath
}

func walkConfig(manualPath, autoPath string) WalkConfig {
	return WalkConfig{
		ManualPath:  manualPath,
		ManualSheet: "M",
		AutoPath:    autoPath,
		AutoSheet:   "A",
		Cols:        2,
		ManualStart: 8,
		AutoStart:   2,
	}
}

func TestCompareSequentialMatch(t *testing.T) {
	rows := [][2]interface{}{{"a", 1.0}, {"b", 2.0}, {"c", 3.0}}
	manualPath, autoPath := walkFixtures(t, t.TempDir(), rows, rows)

	result, err := CompareSequential(walkConfig(manualPath, autoPath), DefaultOptions())
	if err != nil {
		t.Fatalf("CompareSequential failed: %v", err)
	}
	if len(result.Mismatches) != 0 {
		t.Errorf("Expected no mismatches, got %+v", result.Mismatches)
	}
	if result.RowsCompared != 3 {
		t.Errorf("Expected 3 rows compared, got %d", result.RowsCompared)
	}
	if result.FinalOffset != 3 {
		t.Errorf("Expected final offset 3, got %d", result.FinalOffset)
	}
}

func TestCompareSequentialMismatch(t *testing.T) {
	manualRows := [][2]interface{}{{"a", 1.0}, {"b", 2.0}, {"c", 3.0}}
	autoRows := [][2]interface{}{{"a", 1.0}, {"b", 2.75}, {"c", 3.0}}
	manualPath, autoPath := walkFixtures(t, t.TempDir(), manualRows, autoRows)

	result, err := CompareSequential(walkConfig(manualPath, autoPath), DefaultOptions())
	if err != nil {
		t.Fatalf("CompareSequential failed: %v", err)
	}
	if len(result.Mismatches) != 1 {
		t.Fatalf("Expected 1 mismatch, got %d: %+v", len(result.Mismatches), result.Mismatches)
	}

	m := result.Mismatches[0]
	if m.RegionRow != 1 || m.Col != 2 {
		t.Errorf("Expected mismatch at walk row 1 col 2, got row %d col %d", m.RegionRow, m.Col)
	}
	if m.Row != 9 || m.Cell != "B9" {
		t.Errorf("Expected manual-side cell B9, got %q (row %d)", m.Cell, m.Row)
	}
	if result.RowsCompared != 2 {
		t.Errorf("Expected 2 fully matched rows, got %d", result.RowsCompared)
	}
}

func TestCompareSequentialOffsetEquivalence(t *testing.T) {
	rows := [][2]interface{}{{"a", 1.0}, {"b", 2.0}, {"c", 3.0}, {"d", 4.0}, {"e", 5.0}}
	manualPath, autoPath := walkFixtures(t, t.TempDir(), rows, rows)

	// Starting at row 8 with offset 3 walks the same pairs as starting at
	// row 11 with offset 0.
	withOffset := walkConfig(manualPath, autoPath)
	withOffset.Offset = 3

	shifted := walkConfig(manualPath, autoPath)
	shifted.ManualStart = 11
	shifted.AutoStart = 5

	a, err := CompareSequential(withOffset, DefaultOptions())
	if err != nil {
		t.Fatalf("CompareSequential failed: %v", err)
	}
	b, err := CompareSequential(shifted, DefaultOptions())
	if err != nil {
		t.Fatalf("CompareSequential failed: %v", err)
	}

	if a.RowsCompared != b.RowsCompared {
		t.Errorf("Rows compared differ: offset=%d shifted=%d", a.RowsCompared, b.RowsCompared)
	}
	if a.RowsCompared != 2 {
		t.Errorf("Expected 2 rows compared after skipping 3, got %d", a.RowsCompared)
	}
	if len(a.Mismatches) != 0 || len(b.Mismatches) != 0 {
		t.Errorf("Expected no mismatches, got %d and %d", len(a.Mismatches), len(b.Mismatches))
	}
}

func TestCompareSequentialEndsWhenEitherSideBlank(t *testing.T) {
	manualRows := [][2]interface{}{{"a", 1.0}, {"b", 2.0}, {"c", 3.0}}
	autoRows := [][2]interface{}{{"a", 1.0}, {"b", 2.0}}
	manualPath, autoPath := walkFixtures(t, t.TempDir(), manualRows, autoRows)

	result, err := CompareSequential(walkConfig(manualPath, autoPath), DefaultOptions())
	if err != nil {
		t.Fatalf("CompareSequential failed: %v", err)
	}
	// The auto side runs out first; the walk ends without flagging the
	// manual side's extra row.
	if result.RowsCompared != 2 {
		t.Errorf("Expected 2 rows compared, got %d", result.RowsCompared)
	}
	if len(result.Mismatches) != 0 {
		t.Errorf("Expected no mismatches, got %+v", result.Mismatches)
	}
}

func TestCompareSequentialFailFast(t *testing.T) {
	manualRows := [][2]interface{}{{"a", 1.0}, {"b", 2.0}, {"c", 3.0}}
	autoRows := [][2]interface{}{{"a", 9.0}, {"b", 2.0}, {"c", 8.0}}
	manualPath, autoPath := walkFixtures(t, t.TempDir(), manualRows, autoRows)

	opts := DefaultOptions()
	opts.FailFast = true
	result, err := CompareSequential(walkConfig(manualPath, autoPath), opts)
	if err != nil {
		t.Fatalf("CompareSequential failed: %v", err)
	}
	if len(result.Mismatches) != 1 {
		t.Errorf("Expected fail-fast to stop after the first mismatching row, got %d", len(result.Mismatches))
	}
	if result.FinalOffset != 0 {
		t.Errorf("Expected final offset 0 at the mismatching row, got %d", result.FinalOffset)
	}
}

func TestCompareSequentialValidation(t *testing.T) {
	tests := []struct {
		mutate func(*WalkConfig)
		param  string
	}{
		{func(c *WalkConfig) { c.Cols = 0 }, "num-cols"},
		{func(c *WalkConfig) { c.ManualStart = 0 }, "manual-start"},
		{func(c *WalkConfig) { c.AutoStart = -2 }, "auto-start"},
		{func(c *WalkConfig) { c.Offset = -1 }, "offset"},
	}

	for _, tt := range tests {
		cfg := walkConfig("manual.xlsx", "auto.xlsx")
		tt.mutate(&cfg)
		_, err := CompareSequential(cfg, DefaultOptions())
		var ire *InvalidRegionError
		if !errors.As(err, &ire) {
			t.Errorf("%s: expected InvalidRegionError, got %v", tt.param, err)
			continue
		}
		if ire.Param != tt.param {
			t.Errorf("Expected param %q, got %q", tt.param, ire.Param)
		}
	}
}

func TestCompareSequentialMissingSheet(t *testing.T) {
	rows := [][2]interface{}{{"a", 1.0}}
	manualPath, autoPath := walkFixtures(t, t.TempDir(), rows, rows)

	cfg := walkConfig(manualPath, autoPath)
	cfg.AutoSheet = "Nope"
	_, err := CompareSequential(cfg, DefaultOptions())

	var snf *SheetNotFoundError
	if !errors.As(err, &snf) {
		t.Fatalf("Expected SheetNotFoundError, got %v", err)
	}
	if snf.Workbook != "auto" || snf.Sheet != "Nope" {
		t.Errorf("Unexpected error detail: %+v", snf)
	}
}
