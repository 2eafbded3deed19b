// Package main provides the CLI entry point for sheetcheck.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetcheck/sheetcheck/internal/logger"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck"
	"github.com/sheetcheck/sheetcheck/pkg/sheetcheck/output"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	configPath string
	verbose    bool
	jsonOut    bool
	pretty     bool
	failFast   bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetcheck",
	Short: "Validate auto-generated spreadsheet reports against manual references",
	Long: `sheetcheck compares the contents of two workbooks cell by cell over
configurable rectangular regions and reports mismatches. Numeric cells are
rounded to a fixed number of decimal places before comparison; text compares
trimmed and case-insensitive.`,
	Version:       fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file with defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit the result as JSON instead of human-readable output")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

// Exit codes: 0 all compared regions matched, 1 mismatch found, 2 usage,
// file, or sheet errors.
func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, sheetcheck.ErrMismatch) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func emitJSON(env output.Envelope) error {
	data, err := output.ToJSON(env, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
