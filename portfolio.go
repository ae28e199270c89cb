package perfindex

import (
	"fmt"

	"github.com/etnz/perfindex/date"
)

// Portfolio answers performance queries over a dataset of daily market data.
//
// All derived return series are computed once, eagerly, when the portfolio is
// built; queries only compound the already-computed series over the requested
// range. A Portfolio is immutable and safe for concurrent queries.
type Portfolio struct {
	base    string
	assets  []string
	returns [3]Series // one portfolio-level daily return series per Metric
}

// New builds a portfolio from a dataset. It validates the dataset, derives
// the per-asset daily return series for every metric, and aggregates them
// with the portfolio weights.
//
// The weight columns are resampled on the weight table's daily calendar and
// the final day is dropped: return series start on the second calendar day,
// so the weight of a day pairs with the return realized over the following
// day. Weight and return calendars of different lengths fail with
// [ErrMisalignedRange].
func New(d Dataset) (*Portfolio, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	assets := d.Prices.Keys()
	weightRange := d.Weights.Range()
	weights := make([]Series, 0, len(assets))
	for _, asset := range assets {
		w := Resample(d.Weights.Column(asset), weightRange)
		weights = append(weights, w.dropLast())
	}

	p := &Portfolio{base: d.Base, assets: assets}
	for _, m := range []Metric{PriceMetric, CurrencyMetric, TotalMetric} {
		series := make([]Series, 0, len(assets))
		for _, asset := range assets {
			var s Series
			var err error
			switch m {
			case PriceMetric:
				s, err = d.PriceReturns(asset)
			case CurrencyMetric:
				s, err = d.CurrencyReturns(asset)
			case TotalMetric:
				s, err = d.TotalReturns(asset)
			}
			if err != nil {
				return nil, err
			}
			series = append(series, s)
		}
		agg, err := Aggregate(series, weights)
		if err != nil {
			return nil, fmt.Errorf("aggregating %s returns: %w", m, err)
		}
		p.returns[m] = agg
	}
	return p, nil
}

// Base returns the currency performance is measured in.
func (p *Portfolio) Base() string { return p.base }

// Assets returns the asset identifiers in price table order.
func (p *Portfolio) Assets() []string { return p.assets }

// Returns returns the portfolio-level daily return series for a metric.
func (p *Portfolio) Returns(m Metric) Series { return p.returns[m] }

// Range returns the daily calendar covered by a metric's return series, the
// valid domain for performance query boundaries.
func (p *Portfolio) Range(m Metric) date.Range { return p.returns[m].Range() }

// Performance compounds a metric's daily returns into a cumulative index over
// [r.From, r.To], seeded at 1 on r.From. See [Compound] for boundary and
// error semantics.
func (p *Portfolio) Performance(m Metric, r date.Range) (Series, error) {
	return Compound(p.returns[m], r)
}

// AssetPerformance compounds the price returns over the range.
func (p *Portfolio) AssetPerformance(r date.Range) (Series, error) {
	return p.Performance(PriceMetric, r)
}

// CurrencyPerformance compounds the currency returns over the range.
func (p *Portfolio) CurrencyPerformance(r date.Range) (Series, error) {
	return p.Performance(CurrencyMetric, r)
}

// TotalPerformance compounds the total returns over the range.
func (p *Portfolio) TotalPerformance(r date.Range) (Series, error) {
	return p.Performance(TotalMetric, r)
}
