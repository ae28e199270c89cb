// Package cmd implements the CLI application to query portfolio performance.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/perfindex"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&assetCmd{}, "reports")
	c.Register(&currencyCmd{}, "reports")
	c.Register(&totalCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&fetchCmd{}, "dataset")
	c.Register(&latestCmd{}, "dataset")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var datasetPath = flag.String("dataset", ".", "Path to the dataset folder")
var baseCurrency = flag.String("base", "USD", "Base currency performance is measured in")

// LoadDataset reads the dataset folder selected by the app flags.
func LoadDataset() (perfindex.Dataset, error) {
	return perfindex.LoadDataset(*datasetPath, *baseCurrency)
}

// LoadPortfolio reads the dataset folder selected by the app flags and builds
// the portfolio from it.
func LoadPortfolio() (*perfindex.Portfolio, error) {
	d, err := LoadDataset()
	if err != nil {
		return nil, err
	}
	p, err := perfindex.New(d)
	if err != nil {
		return nil, fmt.Errorf("cannot build portfolio from %q: %w", *datasetPath, err)
	}
	return p, nil
}
