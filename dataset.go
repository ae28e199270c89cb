package perfindex

import (
	"fmt"

	"github.com/Rhymond/go-money"

	"github.com/etnz/perfindex/date"
)

// Dataset carries the four raw market tables a portfolio is computed from.
// All tables are treated as immutable once handed to [New]; the zero value is
// not usable, build the tables with [NewTable].
type Dataset struct {
	// Prices holds one observed price column per asset. Dates may have gaps.
	Prices *Table
	// Currencies maps each asset to the currency its price is quoted in.
	Currencies map[string]string
	// Weights holds one observed portfolio weight column per asset, with the
	// same gap pattern as prices. Weights are not required to sum to one.
	Weights *Table
	// Rates holds one exchange-rate column per currency code, expressed
	// against Base. Base itself is absent from this table, its rate is 1.
	Rates *Table
	// Base is the currency performance is measured in, e.g. "USD".
	Base string
}

// Validate checks that the dataset is complete enough to compute performance:
// a known base currency, at least one priced asset, and for every priced asset
// a non-empty price column, a currency code and a weight column.
//
// Currency codes without a rate column are allowed: such assets carry a
// constant rate of 1 (see [Dataset.CurrencyReturns]).
func (d Dataset) Validate() error {
	if money.GetCurrency(d.Base) == nil {
		return fmt.Errorf("unknown base currency %q", d.Base)
	}
	if d.Prices == nil || d.Prices.Len() == 0 {
		return fmt.Errorf("dataset has no priced assets")
	}
	if d.Weights == nil {
		return fmt.Errorf("dataset has no weight table")
	}
	for _, asset := range d.Prices.Keys() {
		if d.Prices.Column(asset).Len() == 0 {
			return fmt.Errorf("asset %q has an empty price column", asset)
		}
		if _, ok := d.Currencies[asset]; !ok {
			return fmt.Errorf("asset %q has no currency", asset)
		}
		w := d.Weights.Column(asset)
		if w == nil || w.Len() == 0 {
			return fmt.Errorf("asset %q has no weights", asset)
		}
	}
	return nil
}

// rateRange returns the daily calendar currency returns live on: the exchange
// rate table's own range, or the price table's range when no rate was ever
// observed.
func (d Dataset) rateRange() date.Range {
	if d.Rates != nil && d.Rates.Len() > 0 {
		return d.Rates.Range()
	}
	return d.Prices.Range()
}
