package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfindex"
	"github.com/etnz/perfindex/date"
	"github.com/google/subcommands"
	charts "github.com/vicanso/go-charts/v2"
)

type chartCmd struct {
	performanceCmd
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the performance indices to a PNG line chart" }
func (*chartCmd) Usage() string {
	return `pfx chart [-s <start_date>|-p <period>] [-d <end_date>] [-o <file.png>]

  Compounds the three metrics over the window and renders their indices as a
  PNG line chart.

`
}

func (p *chartCmd) SetFlags(f *flag.FlagSet) {
	p.performanceCmd.SetFlags(f)
	f.StringVar(&p.output, "o", "performance.png", "Output PNG file.")
}

func (p *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	buf, err := renderChart(pf, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(p.output, buf, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write chart to %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("chart written to %s\n", p.output)
	return subcommands.ExitSuccess
}

// renderChart compounds the three metrics over the range and renders them as
// one PNG line chart, indices on the y axis, calendar days on the x axis.
func renderChart(pf *perfindex.Portfolio, r date.Range) ([]byte, error) {
	metrics := []perfindex.Metric{perfindex.PriceMetric, perfindex.CurrencyMetric, perfindex.TotalMetric}

	var xLabels []string
	values := make([][]float64, 0, len(metrics))
	names := make([]string, 0, len(metrics))
	yMin, yMax := 1.0, 1.0

	for _, m := range metrics {
		index, err := pf.Performance(m, r)
		if err != nil {
			return nil, err
		}
		series := make([]float64, 0, index.Len())
		for day, v := range index.Values() {
			if len(names) == 0 {
				xLabels = append(xLabels, day.String())
			}
			series = append(series, v)
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
		values = append(values, series)
		names = append(names, m.String())
	}

	padding := (yMax - yMin) * 0.05
	if padding == 0 {
		padding = yMax * 0.05
	}
	yMin -= padding
	yMax += padding

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	painter, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Performance in %s, %s to %s", pf.Base(), r.From, r.To)),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
