package perfindex

import "fmt"

// Aggregate combines per-asset daily return series into one portfolio-level
// daily return series: for each day t, the sum over assets of
// returns[i][t] x weights[i][t]. Series are combined position by position;
// the result keeps the calendar of the return series.
//
// Every return series must cover the same number of days, and so must every
// weight series. When the weight calendar and the return calendar differ in
// length the input tables cover different date ranges; rather than silently
// truncating to the shorter one, Aggregate fails with [ErrMisalignedRange].
func Aggregate(returns, weights []Series) (Series, error) {
	if len(returns) == 0 {
		return Series{}, fmt.Errorf("no return series to aggregate")
	}
	if len(returns) != len(weights) {
		return Series{}, fmt.Errorf("%d return series for %d weight series: %w", len(returns), len(weights), ErrMisalignedRange)
	}

	n := returns[0].Len()
	for i := range returns {
		if returns[i].Len() != n {
			return Series{}, fmt.Errorf("return series cover %d and %d days: %w", n, returns[i].Len(), ErrMisalignedRange)
		}
		if weights[i].Len() != n {
			return Series{}, fmt.Errorf("weights cover %d days, returns cover %d: %w", weights[i].Len(), n, ErrMisalignedRange)
		}
	}

	values := make([]float64, n)
	for i := range returns {
		for t := 0; t < n; t++ {
			values[t] += returns[i].Value(t) * weights[i].Value(t)
		}
	}
	return NewSeries(returns[0].Start(), values), nil
}
