package table

// classifySampleSize bounds how many leading rows classification inspects.
// Values past the sample never affect the outcome.
const classifySampleSize = 10

// ColumnClass is the classification outcome for a single column.
type ColumnClass int

// Column classifications.
const (
	// ClassNumeric: every sampled present value parses as a number, and at
	// least one value is present.
	ClassNumeric ColumnClass = iota

	// ClassNonNumeric: every sampled present value fails to parse as a
	// number. An all-missing column is non-numeric vacuously.
	ClassNonNumeric

	// ClassMixed: the sample contains both numeric and non-numeric values.
	ClassMixed
)

// String returns the display name of the classification.
func (c ColumnClass) String() string {
	switch c {
	case ClassNumeric:
		return "numeric"
	case ClassNonNumeric:
		return "non-numeric"
	default:
		return "mixed"
	}
}

// ClassifyColumn inspects up to the first 10 values of a column and
// classifies it. Missing values are skipped without affecting the outcome;
// tables shorter than the sample size just stop sampling early.
func ClassifyColumn(col []Value) ColumnClass {
	numeric := 0
	nonNumeric := 0

	for i := 0; i < len(col) && i < classifySampleSize; i++ {
		if col[i].IsNull() {
			continue
		}
		if _, ok := col[i].Numeric(); ok {
			numeric++
		} else {
			nonNumeric++
		}
	}

	switch {
	case nonNumeric == 0 && numeric > 0:
		return ClassNumeric
	case numeric == 0:
		return ClassNonNumeric
	default:
		return ClassMixed
	}
}

// FirstNumericColumn returns the first column, in declaration order, whose
// sampled values all parse as numbers. A single non-numeric sample
// disqualifies a column; a column with only missing values never qualifies.
// The second return is false when no column qualifies.
func FirstNumericColumn(t *Table) (string, bool) {
	for _, name := range t.Columns() {
		col, _ := t.Column(name)
		if ClassifyColumn(col) == ClassNumeric {
			return name, true
		}
	}
	return "", false
}

// FirstNonNumericColumn returns the first column, in declaration order,
// whose sampled present values all fail to parse as numbers. Missing values
// do not disqualify under this rule, so an all-missing column qualifies.
// The second return is false when no column qualifies.
func FirstNonNumericColumn(t *Table) (string, bool) {
	for _, name := range t.Columns() {
		col, _ := t.Column(name)
		if ClassifyColumn(col) == ClassNonNumeric {
			return name, true
		}
	}
	return "", false
}
