package perfindex

import (
	"reflect"
	"testing"

	"github.com/etnz/perfindex/date"
)

func TestTable_Append(t *testing.T) {
	tbl := NewTable()
	tbl.Append("ACME", date.MustParse("2024-01-02"), 10)
	tbl.Append("ACME", date.MustParse("2024-01-01"), 5)
	tbl.Append("GLOBEX", date.MustParse("2024-01-01"), 7)

	if !tbl.Has("ACME") || !tbl.Has("GLOBEX") || tbl.Has("INITECH") {
		t.Errorf("Has() reports wrong columns")
	}
	if got := tbl.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := tbl.Keys(); !reflect.DeepEqual(got, []string{"ACME", "GLOBEX"}) {
		t.Errorf("Keys() = %v, want insertion order [ACME GLOBEX]", got)
	}

	// overwrite on the same day
	tbl.Append("ACME", date.MustParse("2024-01-02"), 11)
	if v, ok := tbl.Column("ACME").Get(date.MustParse("2024-01-02")); !ok || v != 11 {
		t.Errorf("Column(ACME).Get() = %v, %v want 11, true", v, ok)
	}
}

func TestTable_Range(t *testing.T) {
	tests := []struct {
		name string
		fill func(*Table)
		want date.Range
	}{
		{
			name: "empty table",
			fill: func(*Table) {},
			want: date.Range{},
		},
		{
			name: "single column",
			fill: func(tbl *Table) {
				tbl.Append("A", date.MustParse("2024-01-03"), 1)
				tbl.Append("A", date.MustParse("2024-01-07"), 2)
			},
			want: date.Range{From: date.MustParse("2024-01-03"), To: date.MustParse("2024-01-07")},
		},
		{
			name: "overall range spans all columns",
			fill: func(tbl *Table) {
				tbl.Append("A", date.MustParse("2024-01-03"), 1)
				tbl.Append("A", date.MustParse("2024-01-07"), 2)
				tbl.Append("B", date.MustParse("2024-01-01"), 3)
				tbl.Append("B", date.MustParse("2024-01-05"), 4)
			},
			want: date.Range{From: date.MustParse("2024-01-01"), To: date.MustParse("2024-01-07")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := NewTable()
			tc.fill(tbl)
			if got := tbl.Range(); got != tc.want {
				t.Errorf("Range() = %v, want %v", got, tc.want)
			}
		})
	}
}
