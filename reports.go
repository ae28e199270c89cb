package perfindex

import (
	"fmt"

	"github.com/etnz/perfindex/date"
)

// PerformanceReport holds a compounded performance index over a query range,
// ready for rendering: the index itself, the daily returns realized inside
// the window, and descriptive statistics over those returns.
type PerformanceReport struct {
	Metric Metric
	Base   string // currency performance is measured in
	Range  date.Range
	Index  Series // cumulative index, seeded at 1 on Range.From
	Daily  Series // daily returns inside the window, starting on the second day
	Stats  Stats

	// Invested is an optional amount in Base to scale the index by. Zero
	// means the report carries no invested-value column.
	Invested float64
}

// NewPerformanceReport compounds a metric over the range and derives the
// windowed daily returns and statistics from the resulting index.
func (p *Portfolio) NewPerformanceReport(m Metric, r date.Range, invested float64) (*PerformanceReport, error) {
	index, err := p.Performance(m, r)
	if err != nil {
		return nil, fmt.Errorf("%s performance: %w", m, err)
	}
	daily := Returns(index)
	return &PerformanceReport{
		Metric:   m,
		Base:     p.base,
		Range:    r,
		Index:    index,
		Daily:    daily,
		Stats:    NewStats(daily),
		Invested: invested,
	}, nil
}

// SummaryReport compares the three performance metrics over one query range.
type SummaryReport struct {
	Base    string
	Range   date.Range
	Metrics [3]MetricSummary
}

// MetricSummary condenses one metric's performance over the report range.
type MetricSummary struct {
	Metric Metric
	Final  float64 // last value of the compounded index
	Stats  Stats
}

// NewSummaryReport compounds all three metrics over the range.
func (p *Portfolio) NewSummaryReport(r date.Range) (*SummaryReport, error) {
	report := &SummaryReport{Base: p.base, Range: r}
	for _, m := range []Metric{PriceMetric, CurrencyMetric, TotalMetric} {
		index, err := p.Performance(m, r)
		if err != nil {
			return nil, fmt.Errorf("%s performance: %w", m, err)
		}
		report.Metrics[m] = MetricSummary{
			Metric: m,
			Final:  index.Value(index.Len() - 1),
			Stats:  NewStats(Returns(index)),
		}
	}
	return report, nil
}
