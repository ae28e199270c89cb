package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/date"
	"github.com/etnz/perfindex/renderer"
	"github.com/google/subcommands"
)

// performanceCmd holds the flags shared by the three performance report
// commands. Each metric command embeds it and runs it with its own metric.
type performanceCmd struct {
	period string
	start  string
	end    string
	invest float64
}

func (p *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (day, week, month, quarter, year) ending on the -d date. Overridden by -s.")
	f.StringVar(&p.start, "s", "", "The start date of the window. Defaults to the dataset's first queryable day.")
	f.StringVar(&p.end, "d", "", "The end date of the window. Defaults to the dataset's last day.")
	f.Float64Var(&p.invest, "invest", 0, "Optional amount in the base currency; adds a column valuing it along the index.")
}

// resolveRange turns the -p/-s/-d flags into the query range, defaulting to
// the full calendar the portfolio can answer for the metric.
func (p *performanceCmd) resolveRange(pf *perfindex.Portfolio, m perfindex.Metric) (date.Range, error) {
	covered := pf.Range(m)
	r := covered

	if p.end != "" {
		end, err := date.Parse(p.end)
		if err != nil {
			return r, fmt.Errorf("invalid end date: %w", err)
		}
		r.To = end
	}
	switch {
	case p.start != "":
		start, err := date.Parse(p.start)
		if err != nil {
			return r, fmt.Errorf("invalid start date: %w", err)
		}
		r.From = start
	case p.period != "":
		period, err := date.ParsePeriod(p.period)
		if err != nil {
			return r, err
		}
		r.From = date.NewRange(r.To, period).From
		// A period can reach before the covered calendar; clamp it.
		if r.From.Before(covered.From) {
			r.From = covered.From
		}
	}
	return r, nil
}

// run loads the portfolio, resolves the query range and prints the rendered
// performance report for the metric.
func (p *performanceCmd) run(m perfindex.Metric) subcommands.ExitStatus {
	pf, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r, err := p.resolveRange(pf, m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := pf.NewPerformanceReport(m, r, p.invest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(report))
	return subcommands.ExitSuccess
}

type assetCmd struct{ performanceCmd }

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "compound the portfolio's price returns into an index" }
func (*assetCmd) Usage() string {
	return `pfx asset [-s <start_date>|-p <period>] [-d <end_date>] [-invest <amount>]

  Compounds the portfolio-level price returns (asset prices in their own
  currency, currency moves excluded) into a cumulative index over the window,
  seeded at 1 on the first day.

Usage Examples:
# Price performance of the whole covered calendar.
$ pfx asset

# Price performance of January 2014, valuing an invested 10000.
$ pfx asset -s 2014-01-18 -d 2014-02-09 -invest 10000

`
}
func (p *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.run(perfindex.PriceMetric)
}

type currencyCmd struct{ performanceCmd }

func (*currencyCmd) Name() string { return "currency" }
func (*currencyCmd) Synopsis() string {
	return "compound the portfolio's currency returns into an index"
}
func (*currencyCmd) Usage() string {
	return `pfx currency [-s <start_date>|-p <period>] [-d <end_date>] [-invest <amount>]

  Compounds the portfolio-level currency returns (exchange-rate moves only)
  into a cumulative index over the window.

`
}
func (p *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.run(perfindex.CurrencyMetric)
}

type totalCmd struct{ performanceCmd }

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "compound the portfolio's total returns into an index" }
func (*totalCmd) Usage() string {
	return `pfx total [-s <start_date>|-p <period>] [-d <end_date>] [-invest <amount>]

  Compounds the portfolio-level total returns (asset values measured in the
  base currency, price times exchange rate) into a cumulative index over the
  window.

`
}
func (p *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.run(perfindex.TotalMetric)
}
