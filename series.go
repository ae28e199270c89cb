package perfindex

import (
	"iter"

	"github.com/etnz/perfindex/date"
)

// Series is a sequence of values on a contiguous daily calendar: one value per
// calendar day starting at a fixed day. Because no day is ever skipped, the
// anchor day and the values fully determine the calendar.
//
// A Series is immutable once built; all derived computations return new values.
type Series struct {
	start  date.Date
	values []float64
}

// NewSeries returns a Series anchored at start. The values slice is owned by
// the returned series and must not be modified by the caller afterwards.
func NewSeries(start date.Date, values []float64) Series {
	return Series{start: start, values: values}
}

// Len returns the number of days in the series.
func (s Series) Len() int { return len(s.values) }

// Start returns the first day of the series, or the zero date if empty.
func (s Series) Start() date.Date {
	if len(s.values) == 0 {
		return date.Date{}
	}
	return s.start
}

// End returns the last day of the series, or the zero date if empty.
func (s Series) End() date.Date {
	if len(s.values) == 0 {
		return date.Date{}
	}
	return s.start.Add(len(s.values) - 1)
}

// Range returns the range covered by the series.
func (s Series) Range() date.Range { return date.Range{From: s.Start(), To: s.End()} }

// Day returns the calendar day at position i.
func (s Series) Day(i int) date.Date { return s.start.Add(i) }

// Value returns the value at position i.
func (s Series) Value(i int) float64 { return s.values[i] }

// Index resolves a calendar day to its position in the series, or -1 if the
// day falls outside the covered calendar.
func (s Series) Index(on date.Date) int {
	if len(s.values) == 0 || on.Before(s.start) {
		return -1
	}
	i := on.Sub(s.start)
	if i >= len(s.values) {
		return -1
	}
	return i
}

// At returns the value on a given day and true, or zero and false when the day
// falls outside the covered calendar.
func (s Series) At(on date.Date) (float64, bool) {
	i := s.Index(on)
	if i < 0 {
		return 0, false
	}
	return s.values[i], true
}

// Values returns an iterator over all day/value pairs in chronological order.
func (s Series) Values() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, v := range s.values {
			if !yield(s.start.Add(i), v) {
				return
			}
		}
	}
}

// dropLast returns the series without its final day.
func (s Series) dropLast() Series {
	if len(s.values) == 0 {
		return s
	}
	return Series{start: s.start, values: s.values[:len(s.values)-1]}
}
