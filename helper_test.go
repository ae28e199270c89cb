package perfindex

import (
	"math"

	"github.com/etnz/perfindex/date"
)

// floatClose compares two floats with an absolute tolerance, for quantities
// derived through inexact operations like annualization.
func floatClose(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// newTestDataset returns a small two-asset dataset over 2024-01-01 to
// 2024-01-05. All observed values are dyadic so every derived return and
// compounded index is exactly representable, making expectations exact.
//
// ACME is quoted in the base currency, GLOBEX in EUR. Both price columns have
// gaps, GLOBEX starts a day late to exercise backfilling, and the GLOBEX
// weight doubles mid-range.
func newTestDataset() Dataset {
	prices := NewTable()
	prices.Append("ACME", date.MustParse("2024-01-01"), 128)
	prices.Append("ACME", date.MustParse("2024-01-03"), 160)
	prices.Append("ACME", date.MustParse("2024-01-05"), 120)
	prices.Append("GLOBEX", date.MustParse("2024-01-02"), 64)
	prices.Append("GLOBEX", date.MustParse("2024-01-05"), 80)

	weights := NewTable()
	weights.Append("ACME", date.MustParse("2024-01-01"), 0.5)
	weights.Append("ACME", date.MustParse("2024-01-05"), 0.5)
	weights.Append("GLOBEX", date.MustParse("2024-01-01"), 0.25)
	weights.Append("GLOBEX", date.MustParse("2024-01-04"), 0.5)

	rates := NewTable()
	rates.Append("EUR", date.MustParse("2024-01-01"), 1)
	rates.Append("EUR", date.MustParse("2024-01-03"), 1.25)
	rates.Append("EUR", date.MustParse("2024-01-05"), 1.5625)

	return Dataset{
		Prices:     prices,
		Currencies: map[string]string{"ACME": "USD", "GLOBEX": "EUR"},
		Weights:    weights,
		Rates:      rates,
		Base:       "USD",
	}
}
