// Package eodhd fetches daily close prices from the EODHD.com API.
//
// Asset identifiers are EODHD tickers in the "SYMBOL.EXCHANGECODE" format
// (e.g. "MCD.US"). Responses are cached on disk with a daily expiry, so a
// refresh hits the network at most once a day per ticker.
package eodhd

import (
	"fmt"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/date"
	"github.com/shopspring/decimal"
)

// baseURL is the EODHD API endpoint, overridable in tests.
var baseURL = "https://eodhd.com/api"

// Fetch retrieves the daily close prices for every ticker over the range and
// returns them as a price table, one column per ticker. A ticker that cannot
// be fetched fails the whole call.
func Fetch(apiKey string, tickers []string, r date.Range) (*perfindex.Table, error) {
	t := perfindex.NewTable()
	for _, ticker := range tickers {
		closes, err := fetchCloses(apiKey, ticker, r)
		if err != nil {
			return nil, fmt.Errorf("fetching %q: %w", ticker, err)
		}
		for _, c := range closes {
			t.Append(ticker, c.Date, c.Close.InexactFloat64())
		}
	}
	return t, nil
}

// eodBar is one daily bar of the EODHD end-of-day endpoint. Prices are decoded
// as decimals to keep the API's exact digits until they enter the table.
//
//	{
//		"date": "2024-02-13",
//		"open": 675.066,
//		"high": 684.219,
//		"low": 648.659,
//		"close": 668.445,
//		"adjusted_close": 67.705,
//		"volume": 0
//	}
type eodBar struct {
	Date  date.Date       `json:"date"`
	Close decimal.Decimal `json:"close"`
}

// fetchCloses returns the daily bars for a given EODHD ticker. Bounds are
// included in the response.
func fetchCloses(apiKey, ticker string, r date.Range) ([]eodBar, error) {
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", baseURL, ticker, apiKey, r.From, r.To)

	content := make([]eodBar, 0)
	if err := perfindex.JSONGet(perfindex.NewDailyCachingClient(), addr, &content); err != nil {
		return nil, err
	}
	return content, nil
}
