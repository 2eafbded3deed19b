package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheetcheck/sheetcheck/internal/config"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/output"
)

var (
	interManualPath  string
	interManualSheet string
	interAutoPath    string
	interAutoSheet   string
	interNumCols     int
	interManualStart int
	interAutoStart   int
	interOffset      int
)

var interCmd = &cobra.Command{
	Use:   "inter",
	Short: "Compare one manual sheet against one auto sheet row by row",
	Long: `inter walks a manual sheet and an auto sheet in lockstep, comparing the
first N columns of each row pair. The two sides have independent first data
rows; --offset skips rows already verified in a previous run. The walk ends
when either side reaches a fully blank row.`,
	Args: cobra.NoArgs,
	RunE: runInter,
}

func init() {
	interCmd.Flags().StringVar(&interManualPath, "manual-path", "", "Path to the manual workbook")
	interCmd.Flags().StringVar(&interManualSheet, "manual-sheet", "", "Sheet name in the manual workbook")
	interCmd.Flags().StringVar(&interAutoPath, "auto-path", "", "Path to the auto workbook")
	interCmd.Flags().StringVar(&interAutoSheet, "auto-sheet", "", "Sheet name in the auto workbook")
	interCmd.Flags().IntVar(&interNumCols, "num-cols", 0, "Number of leading columns to compare")
	interCmd.Flags().IntVar(&interManualStart, "manual-start", 8, "First data row in the manual sheet (1-based)")
	interCmd.Flags().IntVar(&interAutoStart, "auto-start", 2, "First data row in the auto sheet (1-based)")
	interCmd.Flags().IntVar(&interOffset, "offset", 0, "Zero-based additional row skip applied to both sides")
	interCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first mismatching row")

	for _, f := range []string{"manual-path", "manual-sheet", "auto-path", "auto-sheet", "num-cols"} {
		_ = interCmd.MarkFlagRequired(f)
	}

	rootCmd.AddCommand(interCmd)
}

func runInter(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("manual-start") {
		interManualStart = cfg.Inter.ManualStart
	}
	if !cmd.Flags().Changed("auto-start") {
		interAutoStart = cfg.Inter.AutoStart
	}

	walkCfg := sheetcheck.WalkConfig{
		ManualPath:  interManualPath,
		ManualSheet: interManualSheet,
		AutoPath:    interAutoPath,
		AutoSheet:   interAutoSheet,
		Cols:        interNumCols,
		ManualStart: interManualStart,
		AutoStart:   interAutoStart,
		Offset:      interOffset,
	}
	opts := sheetcheck.Options{
		Places:   cfg.Compare.DecimalPlaces,
		FailFast: failFast,
	}

	if !jsonOut {
		fmt.Printf("Starting comparison at offset=%d (manual row %d vs auto row %d) over %d columns.\n",
			interOffset, interManualStart+interOffset, interAutoStart+interOffset, interNumCols)
		fmt.Printf("Numeric values are rounded to %d decimal places before comparison.\n",
			opts.DecimalPlaces())
	}

	result, err := sheetcheck.CompareSequential(walkCfg, opts)
	if err != nil {
		return err
	}

	matched := len(result.Mismatches) == 0
	if jsonOut {
		if err := emitJSON(output.Envelope{
			Success:  matched,
			Duration: time.Since(start).String(),
			Result:   result,
		}); err != nil {
			return err
		}
	} else if matched {
		fmt.Printf("No differences. Compared %d row pair(s).\n", result.RowsCompared)
		fmt.Printf("Final offset reached: %d\n", result.FinalOffset)
	} else {
		fmt.Println(output.MismatchTable(result.Mismatches))
		fmt.Printf("%d mismatching cell(s); %d row pair(s) matched before the report above.\n",
			len(result.Mismatches), result.RowsCompared)
	}

	if !matched {
		return sheetcheck.ErrMismatch
	}
	return nil
}
