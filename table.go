package perfindex

import (
	"github.com/etnz/perfindex/date"
)

// Table holds one date-ordered value column per key. Keys are asset
// identifiers for price and weight tables, currency codes for rate tables.
// Columns may have gaps and need not cover the same days.
type Table struct {
	keys []string // column insertion order
	cols map[string]*date.History[float64]
}

// NewTable returns a new empty table.
func NewTable() *Table {
	return &Table{
		keys: make([]string, 0),
		cols: make(map[string]*date.History[float64]),
	}
}

// Append records a value for a key on a given day, creating the column on
// first use. An existing value on that day is overwritten.
func (t *Table) Append(key string, on date.Date, value float64) *Table {
	col, ok := t.cols[key]
	if !ok {
		col = new(date.History[float64])
		t.cols[key] = col
		t.keys = append(t.keys, key)
	}
	col.Append(on, value)
	return t
}

// Has reports whether the table holds a column for the key.
func (t *Table) Has(key string) bool {
	_, ok := t.cols[key]
	return ok
}

// Column returns the history for a key, or nil if the table has no such column.
func (t *Table) Column(key string) *date.History[float64] { return t.cols[key] }

// Keys returns the column keys in insertion order. The returned slice is owned
// by the table.
func (t *Table) Keys() []string { return t.keys }

// Len returns the number of columns.
func (t *Table) Len() int { return len(t.keys) }

// Range returns the overall calendar covered by the table: from the earliest
// observation of any column to the latest. All columns are resampled on this
// shared calendar, so columns with a late first observation are backfilled to
// the table's first day. Returns a zero range for an empty table.
func (t *Table) Range() date.Range {
	var r date.Range
	for _, key := range t.keys {
		col := t.cols[key]
		if col.Len() == 0 {
			continue
		}
		span := col.Span()
		if r.IsZero() {
			r = span
			continue
		}
		if span.From.Before(r.From) {
			r.From = span.From
		}
		if span.To.After(r.To) {
			r.To = span.To
		}
	}
	return r
}
