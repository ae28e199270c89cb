package perfindex

import (
	"fmt"

	"github.com/etnz/perfindex/date"
)

// Returns derives the daily fractional returns of a resampled series: one
// entry per consecutive pair of days, (value[t] - value[t-1]) / value[t-1],
// anchored on the second day of the input calendar. A series of n days yields
// n-1 returns; series shorter than two days yield an empty series.
func Returns(s Series) Series {
	if s.Len() < 2 {
		return Series{}
	}
	values := make([]float64, s.Len()-1)
	for i := range values {
		prev, cur := s.Value(i), s.Value(i+1)
		values[i] = (cur - prev) / prev
	}
	return NewSeries(s.Start().Add(1), values)
}

// zeroReturns returns an all-zero return series on the daily calendar covered
// by r, shaped like the result of [Returns] over that calendar.
func zeroReturns(r date.Range) Series {
	if r.Len() < 2 {
		return Series{}
	}
	return NewSeries(r.From.Add(1), make([]float64, r.Len()-1))
}

// PriceReturns computes the asset's daily price returns in its own currency.
//
// The asset's price column is resampled on the price table's full calendar
// before differencing, so assets quoted at different frequencies produce
// returns on one shared daily calendar.
func (d Dataset) PriceReturns(asset string) (Series, error) {
	col := d.Prices.Column(asset)
	if col == nil {
		return Series{}, fmt.Errorf("unknown asset %q", asset)
	}
	return Returns(Resample(col, d.Prices.Range())), nil
}

// CurrencyReturns computes the asset's daily returns from exchange-rate moves
// alone, on the rate table's calendar.
//
// An asset quoted in the base currency has no currency exposure and yields a
// zero series. So does an asset whose currency has no rate column: it carries
// a constant rate of 1 rather than failing.
func (d Dataset) CurrencyReturns(asset string) (Series, error) {
	code, ok := d.Currencies[asset]
	if !ok {
		return Series{}, fmt.Errorf("asset %q has no currency", asset)
	}
	if code == d.Base || d.Rates == nil || !d.Rates.Has(code) {
		return zeroReturns(d.rateRange()), nil
	}
	return Returns(Resample(d.Rates.Column(code), d.Rates.Range())), nil
}

// TotalReturns computes the asset's daily returns measured in the base
// currency: the return of value[t] = price[t] x rate[t], both resampled on the
// price table's calendar. This combines price and currency exposure
// multiplicatively and is not the sum of the two other return series.
func (d Dataset) TotalReturns(asset string) (Series, error) {
	col := d.Prices.Column(asset)
	if col == nil {
		return Series{}, fmt.Errorf("unknown asset %q", asset)
	}
	code, ok := d.Currencies[asset]
	if !ok {
		return Series{}, fmt.Errorf("asset %q has no currency", asset)
	}

	prices := Resample(col, d.Prices.Range())
	if code == d.Base || d.Rates == nil || !d.Rates.Has(code) {
		// Constant rate of 1: the value in base currency is the price itself.
		return Returns(prices), nil
	}

	rates := Resample(d.Rates.Column(code), d.Prices.Range())
	values := make([]float64, prices.Len())
	for i := range values {
		values[i] = prices.Value(i) * rates.Value(i)
	}
	return Returns(NewSeries(prices.Start(), values)), nil
}
