package sheetcheck

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetcheck/sheetcheck/internal/logger"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/models"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/reader"
)

// SortConfig describes a workbook sort run. Data rows of each target sheet
// are grouped by the value of the group column; priority groups come first
// in Priority order, remaining groups follow alphabetically, and row order
// inside a group is preserved.
type SortConfig struct {
	InputPath string
	// OutputPath defaults to <input>-sorted.xlsx when empty.
	OutputPath string
	// Sheets selects target sheets by name (case-insensitive), 0-based index,
	// or "all". Tokens may be comma-separated. Empty selects the first sheet.
	Sheets []string
	// Column is the header of the group column, matched case-insensitively
	// in row 1.
	Column string
	// Priority lists group values placed first, in order.
	Priority []string
}

// SortWorkbook writes a new workbook containing every sheet of the input;
// target sheets are rewritten in sorted order, other sheets copied
// value-for-value. A target sheet whose header row lacks the group column is
// copied unchanged and reported as skipped.
func SortWorkbook(cfg SortConfig) (*models.SortResult, error) {
	f, err := openWorkbook(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all := f.GetSheetList()
	targets := resolveTargetSheets(cfg.Sheets, all)

	outPath := cfg.OutputPath
	if outPath == "" {
		ext := filepath.Ext(cfg.InputPath)
		outPath = strings.TrimSuffix(cfg.InputPath, ext) + "-sorted" + ext
	}

	out := excelize.NewFile()
	defer out.Close()

	result := &models.SortResult{OutputPath: outPath}
	for _, name := range all {
		grid, err := reader.LoadSheet(f, name)
		if err != nil {
			return nil, err
		}

		rows := [][]string(grid)
		if targets[name] {
			colIdx := findColumn(rows, cfg.Column)
			if colIdx < 0 {
				logger.Warn("group column not found, leaving sheet unchanged",
					"sheet", name, "column", cfg.Column)
				result.Skipped = append(result.Skipped, name)
			} else {
				rows = sortByGroupPriority(rows, colIdx, cfg.Priority)
				result.Sorted = append(result.Sorted, name)
				logger.Info("sorted sheet", "sheet", name, "column", cfg.Column)
			}
		} else {
			result.Copied = append(result.Copied, name)
		}

		if err := writeSheet(out, name, rows); err != nil {
			return nil, err
		}
	}

	// Drop the default sheet excelize creates unless the input uses the name.
	if !reader.HasSheet(f, "Sheet1") {
		if err := out.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}

	if err := out.SaveAs(outPath); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return result, nil
}

// resolveTargetSheets expands sheet selectors into a set of sheet names.
// Unknown names and out-of-range indices are skipped with a warning. An
// empty selection defaults to the first sheet.
func resolveTargetSheets(selectors, all []string) map[string]bool {
	targets := make(map[string]bool)
	if len(all) == 0 {
		return targets
	}

	var tokens []string
	for _, sel := range selectors {
		for _, piece := range strings.Split(sel, ",") {
			if piece = strings.TrimSpace(piece); piece != "" {
				tokens = append(tokens, piece)
			}
		}
	}

	if len(tokens) == 0 {
		targets[all[0]] = true
		return targets
	}

	for _, tok := range tokens {
		if strings.EqualFold(tok, "all") {
			for _, name := range all {
				targets[name] = true
			}
			return targets
		}
		if idx, err := strconv.Atoi(tok); err == nil {
			if idx < 0 || idx >= len(all) {
				logger.Warn("sheet index out of range, skipping", "index", idx)
				continue
			}
			targets[all[idx]] = true
			continue
		}
		found := false
		for _, name := range all {
			if strings.EqualFold(name, tok) {
				targets[name] = true
				found = true
				break
			}
		}
		if !found {
			logger.Warn("sheet not found, skipping", "sheet", tok)
		}
	}
	return targets
}

// findColumn locates a header in row 1, case-insensitively. Returns -1 when
// the sheet is empty or the header is absent.
func findColumn(rows [][]string, header string) int {
	if len(rows) == 0 {
		return -1
	}
	want := strings.ToLower(strings.TrimSpace(header))
	for i, h := range rows[0] {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// sortByGroupPriority stable-sorts the data rows below the header by group.
func sortByGroupPriority(rows [][]string, colIdx int, priority []string) [][]string {
	if len(rows) < 2 {
		return rows
	}
	prio := make(map[string]int, len(priority))
	for i, p := range priority {
		prio[p] = i
	}

	group := func(row []string) string {
		if colIdx < len(row) {
			return strings.TrimSpace(row[colIdx])
		}
		return ""
	}

	data := make([][]string, len(rows)-1)
	copy(data, rows[1:])
	sort.SliceStable(data, func(i, j int) bool {
		gi, gj := group(data[i]), group(data[j])
		pi, iok := prio[gi]
		pj, jok := prio[gj]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return gi < gj
		}
	})

	out := make([][]string, 0, len(rows))
	out = append(out, rows[0])
	return append(out, data...)
}

func writeSheet(out *excelize.File, name string, rows [][]string) error {
	if _, err := out.NewSheet(name); err != nil {
		return err
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := out.SetSheetRow(name, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
