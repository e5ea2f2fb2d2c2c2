package table

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/matzehuels/textspark/pkg/errors"
)

// Column name assigned to a flat sequence of numbers.
const FlatColumnName = "data"

// From resolves arbitrary input data into a Table. The supported shapes are:
//
//   - *Table: returned unchanged
//   - flat sequence of numbers → single column "data"
//   - sequence of sequences → columns "column0".."columnN-1"
//   - sequence of records (maps) → columns named by the union of keys,
//     in sorted order for determinism
//
// Numeric elements may be any Go integer or float type. Unrecognized shapes
// are an INVALID_INPUT error.
func From(data any) (*Table, error) {
	switch d := data.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeMissingInput, "data is required")
	case *Table:
		return d, nil
	case []float64:
		return fromNumbers(toValues(d, func(f float64) Value { return Number(f) }))
	case []int:
		return fromNumbers(toValues(d, func(i int) Value { return Number(float64(i)) }))
	case [][]any:
		rows := make([]any, len(d))
		for i, r := range d {
			rows[i] = r
		}
		return fromRows(rows)
	case []map[string]any:
		rows := make([]map[string]any, len(d))
		copy(rows, d)
		return fromRecords(rows)
	case []any:
		return fromAnySlice(d)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported data shape %T", data)
	}
}

// FromJSON decodes raw JSON into a Table using the same shape dispatch as
// From. JSON numbers decode as float64, so all three documented shapes are
// covered.
func FromJSON(data []byte) (*Table, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid JSON input")
	}
	return From(decoded)
}

// fromAnySlice dispatches a []any on the shape of its elements: all numbers
// → flat column, all sequences → positional columns, all maps → record
// columns. An empty slice is a valid zero-row flat column.
func fromAnySlice(d []any) (*Table, error) {
	if len(d) == 0 {
		return fromNumbers(nil)
	}

	switch d[0].(type) {
	case []any:
		return fromRows(d)
	case map[string]any:
		records := make([]map[string]any, 0, len(d))
		for i, el := range d {
			rec, ok := el.(map[string]any)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "row %d: expected record, got %T", i, el)
			}
			records = append(records, rec)
		}
		return fromRecords(records)
	default:
		values := make([]Value, len(d))
		for i, el := range d {
			v, err := toValue(el)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "element %d", i)
			}
			values[i] = v
		}
		return fromNumbers(values)
	}
}

// fromNumbers builds a single-column table named "data".
func fromNumbers(values []Value) (*Table, error) {
	t := New()
	if err := t.AddColumn(FlatColumnName, values); err != nil {
		return nil, err
	}
	return t, nil
}

// fromRows builds positional columns "column0".."columnN-1" from a sequence
// of sequences. Short rows leave trailing cells null.
func fromRows(rows []any) (*Table, error) {
	width := 0
	parsed := make([][]Value, len(rows))

	for i, row := range rows {
		cells, ok := row.([]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "row %d: expected sequence, got %T", i, row)
		}
		parsed[i] = make([]Value, len(cells))
		for j, cell := range cells {
			v, err := toValue(cell)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "row %d, column %d", i, j)
			}
			parsed[i][j] = v
		}
		if len(cells) > width {
			width = len(cells)
		}
	}

	t := New()
	for c := 0; c < width; c++ {
		col := make([]Value, len(parsed))
		for r, row := range parsed {
			if c < len(row) {
				col[r] = row[c]
			}
		}
		if err := t.AddColumn(fmt.Sprintf("column%d", c), col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// fromRecords builds columns named by the union of record keys. Keys are
// visited in sorted order so repeated ingestion of the same data yields the
// same table. Records missing a key leave that cell null.
func fromRecords(records []map[string]any) (*Table, error) {
	keySet := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			keySet[k] = true
		}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := New()
	for _, key := range keys {
		col := make([]Value, len(records))
		for i, rec := range records {
			raw, present := rec[key]
			if !present {
				continue
			}
			v, err := toValue(raw)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "record %d, key %q", i, key)
			}
			col[i] = v
		}
		if err := t.AddColumn(key, col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// toValue converts a scalar Go value into a cell Value.
func toValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null, nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(float64(v)), nil
	case int:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return String(v.String()), nil
		}
		return Number(f), nil
	case string:
		return String(v), nil
	case bool:
		if v {
			return String("true"), nil
		}
		return String("false"), nil
	default:
		return Null, fmt.Errorf("unsupported cell type %T", raw)
	}
}

// toValues maps a typed slice into cell Values.
func toValues[T any](in []T, conv func(T) Value) []Value {
	out := make([]Value, len(in))
	for i, el := range in {
		out[i] = conv(el)
	}
	return out
}
