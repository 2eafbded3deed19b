package sheetcheck

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetFixture maps A1-style cell names to values for one sheet.
type sheetFixture struct {
	name  string
	cells map[string]interface{}
}

// writeWorkbook builds an xlsx file under dir containing the given sheets,
// in order, and returns its path.
func writeWorkbook(t *testing.T, dir, name string, sheets []sheetFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	usesDefault := false
	for _, s := range sheets {
		if s.name == "Sheet1" {
			usesDefault = true
		}
		if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("NewSheet(%q): %v", s.name, err)
		}
		for cell, value := range s.cells {
			if err := f.SetCellValue(s.name, cell, value); err != nil {
				t.Fatalf("SetCellValue(%q, %q): %v", s.name, cell, err)
			}
		}
	}
	if !usesDefault {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("DeleteSheet: %v", err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}
