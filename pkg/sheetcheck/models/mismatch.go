package models

// Mismatch represents a single cell pair the tolerant-equality rule found unequal.
type Mismatch struct {
	// Sheet is the sheet name the mismatch was found on.
	Sheet string `json:"sheet"`
	// Cell is the manual-side cell in A1 notation.
	Cell string `json:"cell"`
	// Row is the manual-side row (1-based).
	Row int `json:"row"`
	// Col is the column (1-based, same on both sides).
	Col int `json:"col"`
	// RegionRow is the row offset within the compared window (0-based).
	RegionRow int `json:"region_row"`
	// RegionCol is the column offset within the compared window (0-based).
	RegionCol int `json:"region_col"`
	// Manual is the raw manual-side value.
	Manual string `json:"manual"`
	// Auto is the raw auto-side value.
	Auto string `json:"auto"`
	// ManualNorm is the canonical comparison form of the manual value.
	ManualNorm string `json:"manual_norm"`
	// AutoNorm is the canonical comparison form of the auto value.
	AutoNorm string `json:"auto_norm"`
}
