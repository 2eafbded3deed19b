// Package sheetcheck compares rectangular cell regions of two workbooks
// under a tolerant equality rule.
package sheetcheck

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of decimal places numeric values are rounded
// to before comparison. Five places absorbs the floating-point noise the
// report-generating pipelines introduce.
const DefaultPlaces = 5

// numericRe matches plain and scientific decimal notation, after thousands
// separators have been stripped.
var numericRe = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

// asDecimal reports whether the cell value is numeric or numeric-looking,
// returning its decimal form when it is. Thousands separators are dropped.
func asDecimal(value string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if s == "" || !numericRe.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Normalize canonicalizes a cell value for comparison.
//
// Numeric values (including numeric-looking strings) are rounded half away
// from zero to the given number of decimal places and rendered with exactly
// that many fraction digits, so a numeric cell and its string representation
// compare equal. Negative zero collapses to positive zero. Anything else is
// trimmed and lowercased; blank stays the empty string.
func Normalize(value string, places int) string {
	if d, ok := asDecimal(value); ok {
		q := d.Round(int32(places))
		if q.IsZero() {
			return decimal.Zero.StringFixed(int32(places))
		}
		return q.StringFixed(int32(places))
	}
	return strings.ToLower(strings.TrimSpace(value))
}
