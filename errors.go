package perfindex

import "errors"

// Sentinel errors returned by performance queries. Callers match them with
// [errors.Is]; the wrapped message carries the offending date or range.
var (
	// ErrDateNotFound reports a query boundary that falls outside the daily
	// calendar covered by a return series.
	ErrDateNotFound = errors.New("date not found")

	// ErrInvalidRange reports a query range whose start resolves after its end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrMisalignedRange reports weight and return series whose daily calendars
	// have different lengths and therefore cannot be combined.
	ErrMisalignedRange = errors.New("misaligned range")
)
