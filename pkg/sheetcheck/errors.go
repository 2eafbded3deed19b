package sheetcheck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates an input workbook path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMismatch indicates a comparison run found at least one mismatch.
// It distinguishes "report contains differences" from usage and I/O errors
// so callers can map the two to different exit codes.
var ErrMismatch = errors.New("mismatch found")

// SheetNotFoundError indicates a named sheet is absent from a workbook.
type SheetNotFoundError struct {
	// Workbook is the role of the workbook ("manual" or "auto").
	Workbook string
	// Sheet is the missing sheet name.
	Sheet string
	// Available lists the sheet names present in the workbook.
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in %s workbook (available: %s)",
		e.Sheet, e.Workbook, strings.Join(e.Available, ", "))
}

// InvalidRegionError indicates a comparison window parameter is out of range.
type InvalidRegionError struct {
	// Param is the offending parameter name.
	Param string
	// Value is the rejected value.
	Value int
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("invalid region: %s out of range: %d", e.Param, e.Value)
}
