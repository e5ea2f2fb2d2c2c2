package table

import (
	"testing"

	"github.com/matzehuels/textspark/pkg/errors"
)

func TestFromNumbers(t *testing.T) {
	tbl, err := From([]float64{1, 5, 3})
	if err != nil {
		t.Fatalf("From() failed: %v", err)
	}

	cols := tbl.Columns()
	if len(cols) != 1 || cols[0] != "data" {
		t.Fatalf("Columns() = %v, want [data]", cols)
	}

	series, _ := tbl.Series("data")
	want := []float64{1, 5, 3}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}
}

func TestFromRows(t *testing.T) {
	tbl, err := From([][]any{
		{"jan", 10.0},
		{"feb", 20.0},
		{"mar"}, // short row
	})
	if err != nil {
		t.Fatalf("From() failed: %v", err)
	}

	cols := tbl.Columns()
	if len(cols) != 2 || cols[0] != "column0" || cols[1] != "column1" {
		t.Fatalf("Columns() = %v, want [column0 column1]", cols)
	}

	col1, _ := tbl.Column("column1")
	if !col1[2].IsNull() {
		t.Errorf("short row cell = %v, want null", col1[2])
	}
}

func TestFromRecords(t *testing.T) {
	tbl, err := From([]map[string]any{
		{"name": "a", "value": 1.0},
		{"name": "b", "value": 2.0, "extra": "x"},
	})
	if err != nil {
		t.Fatalf("From() failed: %v", err)
	}

	// Union of keys in sorted order
	cols := tbl.Columns()
	want := []string{"extra", "name", "value"}
	if len(cols) != len(want) {
		t.Fatalf("Columns() = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("Columns()[%d] = %q, want %q", i, cols[i], want[i])
		}
	}

	// Missing key stays null
	extra, _ := tbl.Column("extra")
	if !extra[0].IsNull() {
		t.Errorf("extra[0] = %v, want null", extra[0])
	}
}

func TestFromErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		wantCode errors.Code
	}{
		{"nil data", nil, errors.ErrCodeMissingInput},
		{"unsupported shape", struct{}{}, errors.ErrCodeInvalidInput},
		{"mixed rows and records", []any{[]any{1.0}, map[string]any{"a": 1.0}}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := From(tt.data)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("From() = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestFromEmptySlice(t *testing.T) {
	tbl, err := From([]any{})
	if err != nil {
		t.Fatalf("From() failed: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
	if cols := tbl.Columns(); len(cols) != 1 || cols[0] != "data" {
		t.Errorf("Columns() = %v, want [data]", cols)
	}
}

func TestFromTablePassthrough(t *testing.T) {
	orig := New()
	if err := orig.AddColumn("x", []Value{Number(1)}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}

	tbl, err := From(orig)
	if err != nil {
		t.Fatalf("From() failed: %v", err)
	}
	if tbl != orig {
		t.Error("From(*Table) did not return the same table")
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCols []string
		wantRows int
	}{
		{
			name:     "flat numbers",
			input:    `[1, 5, 3, 9, 2]`,
			wantCols: []string{"data"},
			wantRows: 5,
		},
		{
			name:     "rows",
			input:    `[["a", 1], ["b", 2]]`,
			wantCols: []string{"column0", "column1"},
			wantRows: 2,
		},
		{
			name:     "records",
			input:    `[{"name": "a", "value": 1}, {"name": "b", "value": 2}]`,
			wantCols: []string{"name", "value"},
			wantRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := FromJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("FromJSON() failed: %v", err)
			}
			cols := tbl.Columns()
			if len(cols) != len(tt.wantCols) {
				t.Fatalf("Columns() = %v, want %v", cols, tt.wantCols)
			}
			for i := range tt.wantCols {
				if cols[i] != tt.wantCols[i] {
					t.Errorf("Columns()[%d] = %q, want %q", i, cols[i], tt.wantCols[i])
				}
			}
			if tbl.Len() != tt.wantRows {
				t.Errorf("Len() = %d, want %d", tbl.Len(), tt.wantRows)
			}
		})
	}

	if _, err := FromJSON([]byte(`{not json`)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("FromJSON(malformed) = %v, want INVALID_FORMAT", err)
	}
}
