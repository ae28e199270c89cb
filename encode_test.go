package perfindex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/perfindex/date"
)

func TestDecodeTable(t *testing.T) {
	const jsonl = `
{"on": "2024-01-01", "ACME": 128, "GLOBEX": 64}
{"on": "2024-01-03", "ACME": 160}
`
	table, err := DecodeTable("prices.jsonl", strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}

	if got := table.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2 columns", got)
	}
	if v, ok := table.Column("ACME").Get(date.MustParse("2024-01-03")); !ok || v != 160 {
		t.Errorf("ACME on 2024-01-03 = %v, want 160", v)
	}
	// GLOBEX has no observation on the second day.
	if _, ok := table.Column("GLOBEX").Get(date.MustParse("2024-01-03")); ok {
		t.Error("GLOBEX has an observation on 2024-01-03, want a gap")
	}
}

func TestDecodeTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		jsonl string
	}{
		{"not json", `nope`},
		{"missing date", `{"ACME": 128}`},
		{"date not a string", `{"on": 20240101, "ACME": 128}`},
		{"invalid date", `{"on": "yesterday", "ACME": 128}`},
		{"value not a number", `{"on": "2024-01-01", "ACME": "expensive"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeTable("prices.jsonl", strings.NewReader(tc.jsonl)); err == nil {
				t.Error("DecodeTable() error = nil, want parse error")
			}
		})
	}
}

func TestEncodeTable(t *testing.T) {
	table := NewTable()
	table.Append("GLOBEX", date.MustParse("2024-01-01"), 64)
	table.Append("ACME", date.MustParse("2024-01-01"), 128)
	table.Append("ACME", date.MustParse("2024-01-03"), 160)

	var b strings.Builder
	if err := EncodeTable(&b, table); err != nil {
		t.Fatalf("EncodeTable() error = %v", err)
	}

	// One line per observed day, columns in alphabetical order.
	want := `{"on":"2024-01-01","ACME":128,"GLOBEX":64}
{"on":"2024-01-03","ACME":160}
`
	if b.String() != want {
		t.Errorf("EncodeTable() = %q, want %q", b.String(), want)
	}
}

func TestDecodeCurrencies(t *testing.T) {
	const jsonl = `
{"asset": "ACME", "currency": "USD"}
{"asset": "GLOBEX", "currency": "EUR"}
{"asset": "ACME", "currency": "JPY"}
`
	got, err := DecodeCurrencies("assets.jsonl", strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeCurrencies() error = %v", err)
	}
	// The duplicate definition is ignored, first one wins.
	want := map[string]string{"ACME": "USD", "GLOBEX": "EUR"}
	if len(got) != len(want) || got["ACME"] != "USD" || got["GLOBEX"] != "EUR" {
		t.Errorf("DecodeCurrencies() = %v, want %v", got, want)
	}

	if _, err := DecodeCurrencies("assets.jsonl", strings.NewReader(`{"currency": "USD"}`)); err == nil {
		t.Error("DecodeCurrencies() error = nil, want missing asset error")
	}
}

func TestSaveLoadDataset(t *testing.T) {
	dir := t.TempDir()
	d := newTestDataset()

	if err := SaveDataset(dir, d); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}

	loaded, err := LoadDataset(dir, "USD")
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}

	// The reloaded dataset computes the same performance as the original.
	p1, err := New(d)
	if err != nil {
		t.Fatalf("New(original) error = %v", err)
	}
	p2, err := New(loaded)
	if err != nil {
		t.Fatalf("New(loaded) error = %v", err)
	}
	r := date.Range{From: date.MustParse("2024-01-02"), To: date.MustParse("2024-01-05")}
	for _, m := range []Metric{PriceMetric, CurrencyMetric, TotalMetric} {
		s1, err1 := p1.Performance(m, r)
		s2, err2 := p2.Performance(m, r)
		if err1 != nil || err2 != nil {
			t.Fatalf("Performance(%s) errors = %v, %v", m, err1, err2)
		}
		for i := 0; i < s1.Len(); i++ {
			if s1.Value(i) != s2.Value(i) {
				t.Errorf("Performance(%s) day %d = %v, want %v", m, i, s2.Value(i), s1.Value(i))
			}
		}
	}
}

func TestLoadDataset_MissingRatesIsOptional(t *testing.T) {
	dir := t.TempDir()
	d := newTestDataset()
	if err := SaveDataset(dir, d); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "rates.jsonl")); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadDataset(dir, "USD")
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if loaded.Rates == nil || loaded.Rates.Len() != 0 {
		t.Errorf("Rates = %v, want an empty table", loaded.Rates)
	}

	// Without rates every asset carries a constant rate of 1: the currency
	// performance is flat.
	p, err := New(loaded)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r := p.Range(CurrencyMetric)
	index, err := p.CurrencyPerformance(r)
	if err != nil {
		t.Fatalf("CurrencyPerformance() error = %v", err)
	}
	for i := 0; i < index.Len(); i++ {
		if index.Value(i) != 1 {
			t.Errorf("currency index on day %d = %v, want 1", i, index.Value(i))
		}
	}
}
