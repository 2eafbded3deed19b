package sheetcheck

// Options configures comparison behavior.
type Options struct {
	// Places is the number of decimal places numeric values are rounded to
	// before comparison. Values below 1 fall back to DefaultPlaces.
	Places int
	// FailFast stops a run at the first mismatching row or sheet instead of
	// collecting the full mismatch list.
	FailFast bool
}

// DefaultOptions returns default comparison options.
func DefaultOptions() Options {
	return Options{Places: DefaultPlaces}
}

// DecimalPlaces returns the effective rounding precision.
func (o Options) DecimalPlaces() int {
	if o.Places < 1 {
		return DefaultPlaces
	}
	return o.Places
}
