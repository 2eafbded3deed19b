// Package models defines data structures for comparison results.
package models

// Region describes a rectangular window into a sheet.
type Region struct {
	// StartRow is the first row of the window (1-based).
	StartRow int `json:"start_row"`
	// StartCol is the first column of the window (1-based).
	StartCol int `json:"start_col"`
	// Rows is the number of rows in the window.
	Rows int `json:"rows"`
	// Cols is the number of columns in the window.
	Cols int `json:"cols"`
}
