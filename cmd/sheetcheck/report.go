package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheetcheck/sheetcheck/internal/config"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/models"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/output"
)

var (
	reportManualPath string
	reportAutoPath   string
	reportSheets     []string
	reportRows       int
	reportCols       int
	reportStartRow   int
	reportStartCol   int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compare a fixed window across multiple sheets of two workbooks",
	Long: `report compares the same rectangular window on every named sheet, which
must be present under identical names in both workbooks. Sheets are processed
in order; a missing sheet aborts the run after the sheets already matched are
reported.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportManualPath, "manual-path", "", "Path to the manual workbook")
	reportCmd.Flags().StringVar(&reportAutoPath, "auto-path", "", "Path to the auto workbook")
	reportCmd.Flags().StringSliceVar(&reportSheets, "sheets", nil, "Sheet names to compare (repeatable or comma-separated)")
	reportCmd.Flags().IntVar(&reportRows, "rows", 0, "Number of rows in the comparison window")
	reportCmd.Flags().IntVar(&reportCols, "cols", 0, "Number of columns in the comparison window")
	reportCmd.Flags().IntVar(&reportStartRow, "start-row", 1, "First row of the comparison window (1-based)")
	reportCmd.Flags().IntVar(&reportStartCol, "start-col", 1, "First column of the comparison window (1-based)")
	reportCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first mismatching sheet")

	for _, f := range []string{"manual-path", "auto-path", "sheets", "rows", "cols"} {
		_ = reportCmd.MarkFlagRequired(f)
	}

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	window := models.Region{
		StartRow: reportStartRow,
		StartCol: reportStartCol,
		Rows:     reportRows,
		Cols:     reportCols,
	}
	opts := sheetcheck.Options{
		Places:   cfg.Compare.DecimalPlaces,
		FailFast: failFast,
	}

	result, err := sheetcheck.CompareWorkbooks(reportManualPath, reportAutoPath, reportSheets, window, opts)
	if err != nil {
		if result != nil && !jsonOut {
			printMatchedSoFar(result)
		}
		return err
	}

	mismatches := result.Mismatches()
	matched := len(mismatches) == 0
	if jsonOut {
		if err := emitJSON(output.Envelope{
			Success:  matched,
			Duration: time.Since(start).String(),
			Result:   result,
		}); err != nil {
			return err
		}
	} else {
		for _, s := range result.Sheets {
			if s.Matched {
				fmt.Printf("Sheet %q matched 100%%.\n", s.Sheet)
			} else {
				fmt.Printf("Sheet %q has %d mismatching cell(s).\n", s.Sheet, len(s.Mismatches))
			}
		}
		if matched {
			fmt.Println("\nAll specified sheets matched 100%.")
		} else {
			fmt.Println()
			fmt.Println(output.MismatchTable(mismatches))
		}
	}

	if !matched {
		return sheetcheck.ErrMismatch
	}
	return nil
}

func printMatchedSoFar(result *models.RunResult) {
	if names := result.MatchedSheets(); len(names) > 0 {
		fmt.Printf("Sheets matched 100%% before error: %s\n", strings.Join(names, ", "))
	} else {
		fmt.Println("No sheets fully matched before error.")
	}
}
