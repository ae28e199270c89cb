package perfindex

import "fmt"

// Metric identifies one of the three performance measures a portfolio exposes.
type Metric int

const (
	// PriceMetric measures the change of asset prices in their own currency.
	PriceMetric Metric = iota
	// CurrencyMetric measures the change of the exchange rates the assets are
	// exposed to.
	CurrencyMetric
	// TotalMetric measures the change of asset values expressed in the base
	// currency, combining price and currency exposure multiplicatively.
	TotalMetric
)

func (m Metric) String() string {
	switch m {
	case PriceMetric:
		return "price"
	case CurrencyMetric:
		return "currency"
	case TotalMetric:
		return "total"
	default:
		return "unknown"
	}
}

// ParseMetric parses a string into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "price", "asset":
		return PriceMetric, nil
	case "currency", "fx":
		return CurrencyMetric, nil
	case "total":
		return TotalMetric, nil
	default:
		return 0, fmt.Errorf("unknown metric: %q", s)
	}
}
