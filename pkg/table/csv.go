package table

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/matzehuels/textspark/pkg/errors"
)

// cell markers treated as missing values during CSV/XLSX ingestion.
func isMissingCell(s string) bool {
	switch s {
	case "", "null", "NULL", "N/A", "n/a":
		return true
	}
	return false
}

// ReadCSV parses CSV data into a Table. The first row supplies column
// names; every cell is parsed number-first, falling back to string, with
// empty and null-like cells ("null", "N/A") kept as missing.
//
// Malformed rows are skipped rather than failing the whole file; ragged
// rows leave their trailing cells missing.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to read CSV header")
	}
	if len(headers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "CSV has no columns")
	}

	cols := make([][]Value, len(headers))

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		for i := range headers {
			var v Value
			if i < len(row) {
				v = parseCell(row[i])
			}
			cols[i] = append(cols[i], v)
		}
	}

	t := New()
	for i, header := range headers {
		if err := t.AddColumn(strings.TrimSpace(header), cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseCell converts one raw text cell into a Value, number-first.
func parseCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if isMissingCell(s) {
		return Null
	}
	candidate := String(s)
	if f, ok := candidate.Numeric(); ok {
		return Number(f)
	}
	return candidate
}
