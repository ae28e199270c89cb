package perfindex

import (
	"testing"

	"github.com/etnz/perfindex/date"
)

func TestSeries_Index(t *testing.T) {
	s := NewSeries(date.MustParse("2024-01-02"), []float64{1, 2, 3})

	tests := []struct {
		name string
		day  date.Date
		want int
	}{
		{"before start", date.MustParse("2024-01-01"), -1},
		{"start", date.MustParse("2024-01-02"), 0},
		{"inside", date.MustParse("2024-01-03"), 1},
		{"end", date.MustParse("2024-01-04"), 2},
		{"after end", date.MustParse("2024-01-05"), -1},
		{"far outside", date.MustParse("2034-01-01"), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Index(tc.day); got != tc.want {
				t.Errorf("Index(%s) = %d, want %d", tc.day, got, tc.want)
			}
		})
	}
}

func TestSeries_At(t *testing.T) {
	s := NewSeries(date.MustParse("2024-01-02"), []float64{1, 2, 3})

	if v, ok := s.At(date.MustParse("2024-01-03")); !ok || v != 2 {
		t.Errorf("At(2024-01-03) = %v, %v want 2, true", v, ok)
	}
	if _, ok := s.At(date.MustParse("2024-01-01")); ok {
		t.Errorf("At(2024-01-01) = _, true want false")
	}
}

func TestSeries_Bounds(t *testing.T) {
	s := NewSeries(date.MustParse("2024-01-02"), []float64{1, 2, 3})

	if got := s.Start(); got != date.MustParse("2024-01-02") {
		t.Errorf("Start() = %s, want 2024-01-02", got)
	}
	if got := s.End(); got != date.MustParse("2024-01-04") {
		t.Errorf("End() = %s, want 2024-01-04", got)
	}
	if got := s.Day(1); got != date.MustParse("2024-01-03") {
		t.Errorf("Day(1) = %s, want 2024-01-03", got)
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestSeries_Empty(t *testing.T) {
	var s Series

	if got := s.Len(); got != 0 {
		t.Errorf("empty Len() = %d, want 0", got)
	}
	if got := s.Start(); !got.IsZero() {
		t.Errorf("empty Start() = %s, want zero date", got)
	}
	if got := s.End(); !got.IsZero() {
		t.Errorf("empty End() = %s, want zero date", got)
	}
	if got := s.Index(date.MustParse("2024-01-01")); got != -1 {
		t.Errorf("empty Index() = %d, want -1", got)
	}
}

func TestSeries_Values(t *testing.T) {
	s := NewSeries(date.MustParse("2024-01-02"), []float64{1, 2})

	var days []date.Date
	var values []float64
	for on, v := range s.Values() {
		days = append(days, on)
		values = append(values, v)
	}
	if len(days) != 2 || days[0] != date.MustParse("2024-01-02") || days[1] != date.MustParse("2024-01-03") {
		t.Errorf("Values() days = %v", days)
	}
	if values[0] != 1 || values[1] != 2 {
		t.Errorf("Values() values = %v", values)
	}
}
