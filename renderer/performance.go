package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/perfindex"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders a performance report to a markdown string: a
// day-by-day table of the compounded index, and a statistics footer when the
// window holds at least one daily return.
func PerformanceMarkdown(r *perfindex.PerformanceReport) string {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s performance in %s", title(r.Metric.String()), r.Base))
	doc.PlainText(fmt.Sprintf("From %s to %s, index seeded at 1 on the first day.", r.Range.From, r.Range.To))

	header := []string{"Date", "Index", "Daily"}
	alignment := []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight}
	if r.Invested > 0 {
		header = append(header, "Value")
		alignment = append(alignment, md.AlignRight)
	}

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for i := 0; i < r.Index.Len(); i++ {
		day, index := r.Index.Day(i), r.Index.Value(i)
		daily := "-"
		if v, ok := r.Daily.At(day); ok {
			daily = perfindex.AsPercent(v).SignedString()
		}
		row := []string{day.String(), fmt.Sprintf("%.4f", index), daily}
		if r.Invested > 0 {
			row = append(row, perfindex.M(r.Invested*index, r.Base).String())
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	buf2 := &strings.Builder{}
	buf2.WriteString(doc.String())
	ConditionalBlock(buf2, func(w io.Writer) bool {
		if r.Stats.Days == 0 {
			return false
		}
		fmt.Fprint(w, "\n")
		fmt.Fprint(w, statsMarkdown(r.Stats))
		return true
	})

	return buf2.String()
}

// statsMarkdown renders the statistics block shared by the performance and
// summary reports.
func statsMarkdown(s perfindex.Stats) string {
	doc := md.NewMarkdown(&strings.Builder{})
	doc.H2("Statistics")
	doc.BulletList(
		fmt.Sprintf("Days: %d", s.Days),
		fmt.Sprintf("Cumulative return: %s", s.Cumulative.SignedString()),
		fmt.Sprintf("Annualized return: %s", s.Annualized.SignedString()),
		fmt.Sprintf("Volatility (annualized): %s", s.Volatility),
		fmt.Sprintf("Best day: %s", s.Best.SignedString()),
		fmt.Sprintf("Worst day: %s", s.Worst.SignedString()),
		fmt.Sprintf("Max drawdown: %s", s.MaxDrawdown),
	)
	return doc.String()
}

// title upper-cases the first letter of a metric name for headings.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
