package perfindex

import "github.com/etnz/perfindex/date"

// Resample expands a sparse history onto the contiguous daily calendar covered
// by r, one value per day.
//
// Days without an observation take the last observed value before them. Days
// before the first observation take the first observed value. The input history
// is not modified.
//
// An empty history or an inverted range yields an empty series.
func Resample(h *date.History[float64], r date.Range) Series {
	if h.Len() == 0 || r.Len() == 0 {
		return Series{}
	}

	_, first := h.Earliest()
	values := make([]float64, 0, r.Len())
	for on := range r.Days() {
		v, ok := h.ValueAsOf(on)
		if !ok {
			// No observation on or before this day yet: backfill from the
			// first known value.
			v = first
		}
		values = append(values, v)
	}
	return NewSeries(r.From, values)
}
