package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfindex"
	"github.com/google/subcommands"
)

type latestCmd struct {
	fx bool
}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "print live intraday quotes without touching the dataset" }
func (*latestCmd) Usage() string {
	return `pfx latest [-fx] <isin>...

  Prints the latest value exchanged on Tradegate for each given ISIN (quotes
  are in EUR). With -fx, also prints the live EUR/USD rate.

`
}

func (c *latestCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fx, "fx", false, "Also print the live EUR/USD exchange rate.")
}

func (c *latestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status := subcommands.ExitSuccess

	if c.fx {
		rate, err := perfindex.LatestRate("EUR/USD")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = subcommands.ExitFailure
		} else {
			fmt.Printf("EUR/USD %v\n", rate)
		}
	}

	for _, isin := range f.Args() {
		quote, err := perfindex.LatestQuote(isin, isin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s %v EUR\n", isin, quote)
	}
	return status
}
