package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/perfindex"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the three metrics side by side over one range.
func SummaryMarkdown(r *perfindex.SummaryReport) string {
	doc := md.NewMarkdown(&strings.Builder{})

	doc.H1(fmt.Sprintf("Performance summary in %s", r.Base))
	doc.PlainText(fmt.Sprintf("From %s to %s.", r.Range.From, r.Range.To))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Metric", "Final index", "Cumulative", "Annualized", "Volatility", "Max drawdown"},
		Rows:   [][]string{},
	}
	for _, m := range r.Metrics {
		table.Rows = append(table.Rows, []string{
			title(m.Metric.String()),
			fmt.Sprintf("%.4f", m.Final),
			m.Stats.Cumulative.SignedString(),
			m.Stats.Annualized.SignedString(),
			m.Stats.Volatility.String(),
			m.Stats.MaxDrawdown.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
