package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	performanceCmd
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "compare the three performance metrics over a window" }
func (*summaryCmd) Usage() string {
	return `pfx summary [-s <start_date>|-p <period>] [-d <end_date>]

  Compounds the price, currency and total returns over the same window and
  prints their final index and statistics side by side.

`
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	r, err := p.resolveRange(pf, perfindex.TotalMetric)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := pf.NewSummaryReport(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
