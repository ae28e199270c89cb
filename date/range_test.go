package date

import (
	"testing"
	"time"
)

func TestRange_Len(t *testing.T) {
	tests := []struct {
		name string
		in   Range
		want int
	}{
		{"single day", Range{From: New(2025, time.March, 10), To: New(2025, time.March, 10)}, 1},
		{"one week", Range{From: New(2025, time.March, 10), To: New(2025, time.March, 16)}, 7},
		{"across leap day", Range{From: New(2024, time.February, 28), To: New(2024, time.March, 1)}, 3},
		{"inverted", Range{From: New(2025, time.March, 16), To: New(2025, time.March, 10)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{From: New(2025, time.February, 27), To: New(2025, time.March, 2)}

	var got []Date
	for on := range r.Days() {
		got = append(got, on)
	}

	want := []Date{
		New(2025, time.February, 27),
		New(2025, time.February, 28),
		New(2025, time.March, 1),
		New(2025, time.March, 2),
	}
	if len(got) != len(want) {
		t.Fatalf("Days() yielded %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	inverted := Range{From: New(2025, time.March, 2), To: New(2025, time.February, 27)}
	for on := range inverted.Days() {
		t.Fatalf("inverted range yielded %v, want nothing", on)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2025, time.March, 10), To: New(2025, time.March, 16)}

	tests := []struct {
		name string
		day  Date
		want bool
	}{
		{"before", New(2025, time.March, 9), false},
		{"lower bound", New(2025, time.March, 10), true},
		{"inside", New(2025, time.March, 13), true},
		{"upper bound", New(2025, time.March, 16), true},
		{"after", New(2025, time.March, 17), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.day); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
