package table

import (
	"testing"
)

func TestValueNumeric(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   float64
		wantOK bool
	}{
		{"number", Number(3.5), 3.5, true},
		{"negative number", Number(-2), -2, true},
		{"numeric string", String("42"), 42, true},
		{"decimal string", String("3.14"), 3.14, true},
		{"padded string", String("  7 "), 7, true},
		{"thousands separators", String("1,234.5"), 1234.5, true},
		{"word", String("hello"), 0, false},
		{"empty string", String(""), 0, false},
		{"null", Null, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Numeric()
			if ok != tt.wantOK {
				t.Fatalf("Numeric() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Numeric() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"integer-valued number", Number(5), "5"},
		{"decimal number", Number(2.5), "2.5"},
		{"string", String("alpha"), "alpha"},
		{"null", Null, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableAddColumn(t *testing.T) {
	tbl := New()
	if err := tbl.AddColumn("a", []Value{Number(1), Number(2)}); err != nil {
		t.Fatalf("AddColumn(a) failed: %v", err)
	}
	if err := tbl.AddColumn("b", []Value{String("x")}); err != nil {
		t.Fatalf("AddColumn(b) failed: %v", err)
	}

	// Declaration order preserved
	cols := tbl.Columns()
	if len(cols) != 2 || cols[0] != "a" || cols[1] != "b" {
		t.Errorf("Columns() = %v, want [a b]", cols)
	}

	// Shorter column padded with nulls to row count
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	b, _ := tbl.Column("b")
	if len(b) != 2 || !b[1].IsNull() {
		t.Errorf("column b = %v, want padded with null", b)
	}

	// Duplicate name rejected
	if err := tbl.AddColumn("a", nil); err == nil {
		t.Error("AddColumn(duplicate) = nil, want error")
	}
}

func TestTableSeries(t *testing.T) {
	tbl := New()
	if err := tbl.AddColumn("vals", []Value{Number(1), Null, String("3"), String("junk")}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}

	series, ok := tbl.Series("vals")
	if !ok {
		t.Fatal("Series(vals) not found")
	}

	want := []float64{1, 0, 3, 0}
	if len(series) != len(want) {
		t.Fatalf("len(series) = %d, want %d", len(series), len(want))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}

	if _, ok := tbl.Series("missing"); ok {
		t.Error("Series(missing) ok = true, want false")
	}
}
