package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/date"
	"github.com/etnz/perfindex/ecb"
	"github.com/etnz/perfindex/eodhd"
	"github.com/google/subcommands"
)

const eodhd_api_key = "EODHD_API_KEY"

type fetchCmd struct {
	apiKey string
	start  string
	end    string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh the dataset's prices and exchange rates" }
func (*fetchCmd) Usage() string {
	return `pfx fetch [-eodhd-api-key <key>] [-s <start_date>] [-d <end_date>]

  Fetches daily close prices from EODHD for every asset of the dataset (asset
  identifiers are EODHD tickers, e.g. "MCD.US"), and daily exchange rates from
  the ECB reference-rates archive for every quoted currency, then merges the
  observations into the dataset files. The weight table is user-maintained and
  never touched.

  The EODHD API key is set via the -eodhd-api-key flag or the ` + eodhd_api_key + `
  environment variable. You can get one at https://eodhd.com/
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key to use for consuming EODHD.com API. This flag takes precedence over the "+eodhd_api_key+" environment variable.")
	f.StringVar(&c.start, "s", "", "First day to fetch. Defaults to one year ago.")
	f.StringVar(&c.end, "d", "", "Last day to fetch. Defaults to today.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.apiKey == "" {
		c.apiKey = os.Getenv(eodhd_api_key)
	}
	if c.apiKey == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", eodhd_api_key)
		return subcommands.ExitFailure
	}

	r := date.Range{From: date.Today().AddMonth(-12), To: date.Today()}
	var err error
	if c.start != "" {
		if r.From, err = date.Parse(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.end != "" {
		if r.To, err = date.Parse(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	d, err := LoadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	assets := d.Prices.Keys()
	prices, err := eodhd.Fetch(c.apiKey, assets, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}
	merge(d.Prices, prices)

	currencies := quotedCurrencies(d)
	if len(currencies) > 0 {
		rates, err := ecb.Fetch(d.Base, currencies, r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rates: %v\n", err)
			return subcommands.ExitFailure
		}
		merge(d.Rates, rates)
	}

	if err := perfindex.SaveDataset(*datasetPath, d); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("dataset %q refreshed, %d assets, %d currencies\n", *datasetPath, len(assets), len(currencies))
	return subcommands.ExitSuccess
}

// merge copies every observation of src into dst, overwriting same-day values.
func merge(dst, src *perfindex.Table) {
	for _, key := range src.Keys() {
		for day, v := range src.Column(key).Values() {
			dst.Append(key, day, v)
		}
	}
}

// quotedCurrencies returns the non-base currencies the dataset's assets are
// quoted in, deduplicated.
func quotedCurrencies(d perfindex.Dataset) []string {
	seen := make(map[string]bool)
	var currencies []string
	for _, asset := range d.Prices.Keys() {
		code := d.Currencies[asset]
		if code == "" || code == d.Base || seen[code] {
			continue
		}
		seen[code] = true
		currencies = append(currencies, code)
	}
	return currencies
}
