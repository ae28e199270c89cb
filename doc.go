// Package perfindex computes investment-portfolio performance indices from
// daily market data.
//
// The computation is a pipeline over four raw tables supplied once at
// construction time (prices, currencies, weights and exchange rates):
//   - Calendar Normalization: every observed column is expanded onto a
//     contiguous daily calendar, days without an observation carrying the
//     last known value forward (the first known value backward for leading
//     gaps).
//   - Return Calculation: per asset, daily fractional returns are derived
//     for three metrics: the price in the asset's own currency, the exchange
//     rate the asset is exposed to, and the asset's value measured in the
//     base currency (price times rate, combined multiplicatively).
//   - Weight Aggregation: the per-asset return series are combined into one
//     portfolio-level daily return series per metric, each day's return
//     being the weight-weighted sum of the asset returns.
//   - Compounding: a performance query compounds a portfolio-level return
//     series into a cumulative index over an inclusive date window, seeded
//     at 1 on the window's first day.
//
// All derived series are computed eagerly when the portfolio is built;
// queries only re-slice and compound them, so repeated queries with the same
// arguments return identical results.
//
// The package also owns the dataset persistence (human-readable,
// git-friendly JSONL files) that backs the `pfx` command-line tool, and the
// market-data refresh from the EODHD and ECB providers.
package perfindex
