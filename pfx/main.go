// Command pfx computes investment-portfolio performance indices from a
// dataset of daily market data.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/perfindex/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion support; a no-op unless invoked by the completion
	// machinery ("COMP_LINE" in the environment).
	completion().Complete("pfx")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the pfx command line for shell completion.
func completion() *complete.Command {
	report := map[string]complete.Predictor{
		"p":      predict.Set{"day", "week", "month", "quarter", "year"},
		"s":      predict.Nothing,
		"d":      predict.Nothing,
		"invest": predict.Something,
	}
	chart := map[string]complete.Predictor{
		"p": report["p"],
		"s": predict.Nothing,
		"d": predict.Nothing,
		"o": predict.Files("*.png"),
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"dataset": predict.Dirs("*"),
			"base":    predict.Something,
		},
		Sub: map[string]*complete.Command{
			"asset":    {Flags: report},
			"currency": {Flags: report},
			"total":    {Flags: report},
			"summary":  {Flags: report},
			"chart":    {Flags: chart},
			"fetch": {Flags: map[string]complete.Predictor{
				"eodhd-api-key": predict.Something,
				"s":             predict.Nothing,
				"d":             predict.Nothing,
			}},
			"latest": {Flags: map[string]complete.Predictor{"fx": predict.Nothing}},
			"topic":  {Args: predict.Set{"readme", "dataset", "dates", "metrics", "performance", "*"}},
			"assist": {},
		},
	}
}
