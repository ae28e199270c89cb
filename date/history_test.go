package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}

}

func TestEarliestLatest(t *testing.T) {
	h := new(History[float64])

	if day, _ := h.Earliest(); !day.IsZero() {
		t.Errorf("empty History.Earliest() day = %v want zero", day)
	}
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("empty History.Latest() day = %v want zero", day)
	}

	h.Append(New(2025, 3, 10), 100)
	h.Append(New(2025, 3, 1), 90)
	h.Append(New(2025, 3, 5), 95)

	if day, value := h.Earliest(); day != New(2025, 3, 1) || value != 90 {
		t.Errorf("Earliest() = %v, %v want %v, 90", day, value, New(2025, 3, 1))
	}
	if day, value := h.Latest(); day != New(2025, 3, 10) || value != 100 {
		t.Errorf("Latest() = %v, %v want %v, 100", day, value, New(2025, 3, 10))
	}
	if span := h.Span(); span != (Range{From: New(2025, 3, 1), To: New(2025, 3, 10)}) {
		t.Errorf("Span() = %v want [2025-03-01, 2025-03-10]", span)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 1, 2), 10)
	h.Append(New(2025, 1, 6), 20)

	tests := []struct {
		name  string
		day   Date
		want  float64
		found bool
	}{
		{"before first", New(2025, 1, 1), 0, false},
		{"exact first", New(2025, 1, 2), 10, true},
		{"gap carries previous", New(2025, 1, 4), 10, true},
		{"exact second", New(2025, 1, 6), 20, true},
		{"after last carries last", New(2025, 1, 10), 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := h.ValueAsOf(tt.day)
			if found != tt.found {
				t.Fatalf("ValueAsOf(%v) found = %v, want %v", tt.day, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("ValueAsOf(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
