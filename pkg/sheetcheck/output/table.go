package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/models"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// MismatchTable renders mismatches as a bordered table, one row per
// mismatching cell pair.
func MismatchTable(mismatches []models.Mismatch) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SHEET", "CELL", "MANUAL", "AUTO").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, m := range mismatches {
		t.Row(m.Sheet, m.Cell, m.Manual, m.Auto)
	}
	return t.Render()
}
