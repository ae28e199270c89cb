package perfindex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// daysPerYear annualizes quantities derived from daily series. Return series
// cover every calendar day, not only trading days, so a year is 365 days.
const daysPerYear = 365.0

// Stats summarizes a portfolio-level daily return series.
type Stats struct {
	Days        int     // number of daily returns
	Cumulative  Percent // compounded return over the whole series
	Annualized  Percent // compound annual growth rate
	Volatility  Percent // annualized standard deviation of daily returns
	Best        Percent // best daily return
	Worst       Percent // worst daily return
	MaxDrawdown Percent // deepest peak-to-trough loss of the compounded index
}

// NewStats computes descriptive statistics over a daily return series.
// An empty series yields zero stats.
func NewStats(returns Series) Stats {
	n := returns.Len()
	if n == 0 {
		return Stats{}
	}

	// Compound the returns into an index to derive cumulative growth and
	// drawdown, seeded at 1 like a performance query.
	cumulative := 1.0
	peak := 1.0
	drawdown := 0.0
	for _, r := range returns.values {
		cumulative *= 1 + r
		if cumulative > peak {
			peak = cumulative
		}
		if dd := (peak - cumulative) / peak; dd > drawdown {
			drawdown = dd
		}
	}

	annualized := cumulative - 1
	// Compound annual growth rate; skipped for very short series where
	// annualization explodes, and for a wiped-out index (a daily loss beyond
	// -100% turns the index non-positive and the root undefined).
	if n >= 3 && cumulative > 0 {
		annualized = math.Pow(cumulative, daysPerYear/float64(n)) - 1
	}

	volatility := 0.0
	if n >= 2 {
		volatility = stat.StdDev(returns.values, nil) * math.Sqrt(daysPerYear)
	}

	return Stats{
		Days:        n,
		Cumulative:  AsPercent(cumulative - 1),
		Annualized:  AsPercent(annualized),
		Volatility:  AsPercent(volatility),
		Best:        AsPercent(floats.Max(returns.values)),
		Worst:       AsPercent(floats.Min(returns.values)),
		MaxDrawdown: AsPercent(drawdown),
	}
}
