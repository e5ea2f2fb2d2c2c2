// Package table provides the column-oriented tabular source for textspark.
//
// A Table is an ordered set of named columns, each holding an equal-length
// sequence of optional values. Input data of heterogeneous shapes (flat
// number sequences, rows of sequences, rows of records, CSV, XLSX) is
// resolved once at ingestion into this uniform representation; downstream
// code never branches on the raw input shape again.
//
// # Values
//
// Each cell is a Value: a tagged variant that is either a number, a string,
// or null (missing). Values are immutable once created.
//
// # Usage
//
//	t, err := table.From([]float64{1, 5, 3, 9, 2})
//	if err != nil {
//	    return err
//	}
//	series := t.Series("data") // missing values coerced to 0
package table

import (
	"strconv"
	"strings"

	"github.com/matzehuels/textspark/pkg/errors"
)

// =============================================================================
// Value - Tagged Cell Variant
// =============================================================================

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindNumber
	KindString
)

// Value is a single table cell: a number, a string, or null.
// The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Number creates a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String creates a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Null is the missing Value.
var Null = Value{}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is missing.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Numeric returns the numeric interpretation of v. Numbers convert directly;
// strings are parsed leniently (surrounding whitespace and thousands
// separators are ignored). The second return is false when v is null or does
// not parse as a number.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		s := strings.TrimSpace(v.str)
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text returns the string form of v for display. Numbers are formatted with
// the shortest representation that round-trips; null renders as "".
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}

// =============================================================================
// Table - Ordered Named Columns
// =============================================================================

// Table is an ordered set of named, equal-length columns.
//
// Tables are rectangular by construction: AddColumn pads every column with
// null values so all columns share the same row count.
type Table struct {
	names []string
	cols  map[string][]Value
	rows  int
}

// New creates an empty table.
func New() *Table {
	return &Table{cols: make(map[string][]Value)}
}

// AddColumn appends a named column. Columns keep their insertion order,
// which is the order classification and rendering visit them in.
// Adding a column whose name already exists is an error.
func (t *Table) AddColumn(name string, values []Value) error {
	if _, exists := t.cols[name]; exists {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", name)
	}

	t.names = append(t.names, name)
	t.cols[name] = values

	if len(values) > t.rows {
		t.rows = len(values)
	}
	t.pad()
	return nil
}

// pad extends every column to the current row count with null values.
func (t *Table) pad() {
	for name, col := range t.cols {
		for len(col) < t.rows {
			col = append(col, Null)
		}
		t.cols[name] = col
	}
}

// Columns returns the column names in declaration order.
// The returned slice must not be modified.
func (t *Table) Columns() []string {
	return t.names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the values of the named column.
// The second return is false if the column does not exist.
func (t *Table) Column(name string) ([]Value, bool) {
	col, ok := t.cols[name]
	return col, ok
}

// Len returns the row count. All columns share this length.
func (t *Table) Len() int {
	return t.rows
}

// Series materializes the named column as a numeric sequence. Missing and
// non-numeric values are coerced to 0. The returned slice is a fresh copy
// owned by the caller.
//
// The second return is false if the column does not exist.
func (t *Table) Series(name string) ([]float64, bool) {
	col, ok := t.cols[name]
	if !ok {
		return nil, false
	}

	series := make([]float64, len(col))
	for i, v := range col {
		if f, ok := v.Numeric(); ok {
			series[i] = f
		}
	}
	return series, true
}
