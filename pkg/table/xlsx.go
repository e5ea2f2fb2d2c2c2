package table

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/textspark/pkg/errors"
)

// ReadXLSX parses the first sheet of an XLSX workbook into a Table. The
// first row supplies column names; cells are parsed number-first like CSV
// ingestion. Rows shorter than the header leave trailing cells missing.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to open workbook %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to read sheet %q", sheets[0])
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "sheet %q is empty", sheets[0])
	}

	headers := rows[0]
	if len(headers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "sheet %q has no columns", sheets[0])
	}

	cols := make([][]Value, len(headers))
	for _, row := range rows[1:] {
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
