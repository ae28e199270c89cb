package perfindex

import (
	"fmt"

	"github.com/etnz/perfindex/date"
)

// Compound converts a daily return series into a cumulative performance index
// over [r.From, r.To], both inclusive. The index is seeded at 1 on r.From and
// grows multiplicatively: index[t] = index[t-1] x (1 + returns[t]). Every
// query reseeds at 1, so the result is always relative to the start of the
// requested range.
//
// Both boundaries must resolve to days of the return series' calendar;
// otherwise Compound fails with [ErrDateNotFound]. A start after the end fails
// with [ErrInvalidRange].
func Compound(returns Series, r date.Range) (Series, error) {
	from := returns.Index(r.From)
	if from < 0 {
		return Series{}, fmt.Errorf("start %s outside the covered calendar %s to %s: %w", r.From, returns.Start(), returns.End(), ErrDateNotFound)
	}
	to := returns.Index(r.To)
	if to < 0 {
		return Series{}, fmt.Errorf("end %s outside the covered calendar %s to %s: %w", r.To, returns.Start(), returns.End(), ErrDateNotFound)
	}
	if from > to {
		return Series{}, fmt.Errorf("start %s after end %s: %w", r.From, r.To, ErrInvalidRange)
	}

	values := make([]float64, to-from+1)
	values[0] = 1
	for i := 1; i < len(values); i++ {
		values[i] = values[i-1] * (1 + returns.Value(from+i))
	}
	return NewSeries(r.From, values), nil
}
