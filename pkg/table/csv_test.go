package table

import (
	"strings"
	"testing"

	"github.com/matzehuels/textspark/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"name,value,notes",
		"alpha,10,first",
		"beta,20.5,",
		"gamma,N/A,third",
	}, "\n")

	tbl, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}

	cols := tbl.Columns()
	want := []string{"name", "value", "notes"}
	if len(cols) != len(want) {
		t.Fatalf("Columns() = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("Columns()[%d] = %q, want %q", i, cols[i], want[i])
		}
	}

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}

	// Numbers parse number-first
	value, _ := tbl.Column("value")
	if value[0].Kind() != KindNumber {
		t.Errorf("value[0].Kind() = %v, want number", value[0].Kind())
	}
	if f, _ := value[1].Numeric(); f != 20.5 {
		t.Errorf("value[1] = %v, want 20.5", f)
	}

	// N/A and empty cells stay missing
	if !value[2].IsNull() {
		t.Errorf("value[2] = %v, want null", value[2])
	}
	notes, _ := tbl.Column("notes")
	if !notes[1].IsNull() {
		t.Errorf("notes[1] = %v, want null", notes[1])
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "a,b\n1,2\n3\n"

	tbl, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}

	b, _ := tbl.Column("b")
	if len(b) != 2 {
		t.Fatalf("len(b) = %d, want 2", len(b))
	}
	if !b[1].IsNull() {
		t.Errorf("b[1] = %v, want null for ragged row", b[1])
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadCSV(empty) = %v, want INVALID_FORMAT", err)
	}
}
