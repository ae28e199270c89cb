package perfindex

import (
	"reflect"
	"testing"

	"github.com/etnz/perfindex/date"
)

func TestReturns(t *testing.T) {
	tests := []struct {
		name string
		in   Series
		want Series
	}{
		{
			name: "daily fractional changes",
			in:   NewSeries(date.MustParse("2024-01-01"), []float64{128, 128, 160, 160, 120}),
			want: NewSeries(date.MustParse("2024-01-02"), []float64{0, 0.25, 0, -0.25}),
		},
		{
			name: "two days",
			in:   NewSeries(date.MustParse("2024-01-01"), []float64{100, 150}),
			want: NewSeries(date.MustParse("2024-01-02"), []float64{0.5}),
		},
		{
			name: "single day has no return",
			in:   NewSeries(date.MustParse("2024-01-01"), []float64{100}),
			want: Series{},
		},
		{
			name: "empty",
			in:   Series{},
			want: Series{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Returns(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Returns() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDataset_PriceReturns(t *testing.T) {
	d := newTestDataset()

	got, err := d.PriceReturns("ACME")
	if err != nil {
		t.Fatalf("PriceReturns(ACME) error = %v", err)
	}
	// Daily prices after gap filling: 128 128 160 160 120.
	want := NewSeries(date.MustParse("2024-01-02"), []float64{0, 0.25, 0, -0.25})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PriceReturns(ACME) = %+v, want %+v", got, want)
	}

	// GLOBEX has no observation on the table's first day: its price is
	// backfilled, so its series still covers the shared calendar.
	got, err = d.PriceReturns("GLOBEX")
	if err != nil {
		t.Fatalf("PriceReturns(GLOBEX) error = %v", err)
	}
	want = NewSeries(date.MustParse("2024-01-02"), []float64{0, 0, 0, 0.25})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PriceReturns(GLOBEX) = %+v, want %+v", got, want)
	}

	if _, err := d.PriceReturns("INITECH"); err == nil {
		t.Errorf("PriceReturns(INITECH) error = nil, want unknown asset error")
	}
}

func TestDataset_CurrencyReturns(t *testing.T) {
	d := newTestDataset()

	t.Run("base currency asset is identically zero", func(t *testing.T) {
		got, err := d.CurrencyReturns("ACME")
		if err != nil {
			t.Fatalf("CurrencyReturns(ACME) error = %v", err)
		}
		want := NewSeries(date.MustParse("2024-01-02"), []float64{0, 0, 0, 0})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("CurrencyReturns(ACME) = %+v, want %+v", got, want)
		}
	})

	t.Run("foreign asset follows its exchange rate", func(t *testing.T) {
		got, err := d.CurrencyReturns("GLOBEX")
		if err != nil {
			t.Fatalf("CurrencyReturns(GLOBEX) error = %v", err)
		}
		// Daily EUR rates after gap filling: 1 1 1.25 1.25 1.5625.
		want := NewSeries(date.MustParse("2024-01-02"), []float64{0, 0.25, 0, 0.25})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("CurrencyReturns(GLOBEX) = %+v, want %+v", got, want)
		}
	})

	t.Run("unknown currency carries a constant rate of 1", func(t *testing.T) {
		d := newTestDataset()
		d.Currencies["GLOBEX"] = "XXX" // no XXX column in the rate table
		got, err := d.CurrencyReturns("GLOBEX")
		if err != nil {
			t.Fatalf("CurrencyReturns(GLOBEX) error = %v", err)
		}
		want := NewSeries(date.MustParse("2024-01-02"), []float64{0, 0, 0, 0})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("CurrencyReturns(GLOBEX) = %+v, want %+v", got, want)
		}
	})
}

func TestDataset_TotalReturns(t *testing.T) {
	d := newTestDataset()

	t.Run("base currency asset equals price returns", func(t *testing.T) {
		got, err := d.TotalReturns("ACME")
		if err != nil {
			t.Fatalf("TotalReturns(ACME) error = %v", err)
		}
		want := NewSeries(date.MustParse("2024-01-02"), []float64{0, 0.25, 0, -0.25})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TotalReturns(ACME) = %+v, want %+v", got, want)
		}
	})

	t.Run("foreign asset compounds price and rate multiplicatively", func(t *testing.T) {
		got, err := d.TotalReturns("GLOBEX")
		if err != nil {
			t.Fatalf("TotalReturns(GLOBEX) error = %v", err)
		}
		// Values in base currency: 64 64 80 80 125, from prices 64 64 64 64 80
		// times rates 1 1 1.25 1.25 1.5625.
		want := NewSeries(date.MustParse("2024-01-02"), []float64{0, 0.25, 0, 0.5625})
		if !reflect.DeepEqual(got, want) {
			t.Errorf("TotalReturns(GLOBEX) = %+v, want %+v", got, want)
		}

		// Not the sum of the two other series: on the last day price return is
		// 0.25 and currency return is 0.25, the total is 0.5625 not 0.5.
		price, _ := d.PriceReturns("GLOBEX")
		currency, _ := d.CurrencyReturns("GLOBEX")
		if sum := price.Value(3) + currency.Value(3); sum == got.Value(3) {
			t.Errorf("total return %v must differ from price+currency %v", got.Value(3), sum)
		}
	})
}
