package ecb

import (
	"strings"
	"testing"

	"github.com/etnz/perfindex/date"
)

const sampleCSV = `Date,USD,JPY,GBP,
2024-01-05,1.0921,158.03,N/A,
2024-01-04,1.0953,158.66,0.8618,
2024-01-03,1.0919,156.84,0.8646,
`

func TestParseHistory(t *testing.T) {
	days, err := parseHistory(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parseHistory() unexpected error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("parseHistory() returned %d days, want 3", len(days))
	}
	if days[0].on != date.MustParse("2024-01-05") {
		t.Errorf("first day = %s, want 2024-01-05", days[0].on)
	}
	if got := days[0].rates["USD"]; got != 1.0921 {
		t.Errorf("USD rate on 2024-01-05 = %v, want 1.0921", got)
	}
	if _, ok := days[0].rates["GBP"]; ok {
		t.Error("N/A cell must be skipped, got a GBP rate on 2024-01-05")
	}
}

func TestCrossRates(t *testing.T) {
	days, err := parseHistory(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parseHistory() unexpected error = %v", err)
	}

	r := date.Range{From: date.MustParse("2024-01-04"), To: date.MustParse("2024-01-05")}
	table, err := crossRates(days, "USD", []string{"EUR", "JPY", "USD"}, r)
	if err != nil {
		t.Fatalf("crossRates() unexpected error = %v", err)
	}

	// The base currency never gets a column.
	if table.Has("USD") {
		t.Error("crossRates() produced a column for the base currency")
	}

	// EUR against USD is the published USD-per-EUR rate.
	if got, ok := table.Column("EUR").Get(date.MustParse("2024-01-04")); !ok || got != 1.0953 {
		t.Errorf("EUR/USD on 2024-01-04 = %v, want 1.0953", got)
	}

	// JPY against USD crosses through the euro.
	want := 1.0953 / 158.66
	if got, ok := table.Column("JPY").Get(date.MustParse("2024-01-04")); !ok || got != want {
		t.Errorf("JPY/USD on 2024-01-04 = %v, want %v", got, want)
	}

	// The day before the range is excluded.
	if _, ok := table.Column("EUR").Get(date.MustParse("2024-01-03")); ok {
		t.Error("crossRates() kept a day outside the requested range")
	}
}
