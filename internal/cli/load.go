package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/textspark/pkg/errors"
	"github.com/matzehuels/textspark/pkg/table"
)

// Supported input formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
	formatXLSX = "xlsx"
)

// detectFormat infers the input format from a file extension. An explicit
// format always wins; stdin without an explicit format defaults to CSV.
func detectFormat(path, explicit string) (string, error) {
	if explicit != "" {
		switch explicit {
		case formatCSV, formatJSON, formatXLSX:
			return explicit, nil
		}
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be one of: csv, json, xlsx)", explicit)
	}

	if path == "-" {
		return formatCSV, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV, nil
	case ".json":
		return formatJSON, nil
	case ".xlsx":
		return formatXLSX, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %q; use --format", path)
	}
}

// loadTable reads the file at path (or stdin for "-") into a Table.
func loadTable(path, format string) (*table.Table, error) {
	if err := errors.ValidateInputPath(path); err != nil {
		return nil, err
	}

	format, err := detectFormat(path, format)
	if err != nil {
		return nil, err
	}

	if format == formatXLSX {
		if path == "-" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "xlsx input cannot be read from stdin")
		}
		return table.ReadXLSX(path)
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s not found", path)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to open %s", path)
		}
		defer f.Close()
		r = f
	}

	switch format {
	case formatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", path)
		}
		return table.FromJSON(data)
	default:
		return table.ReadCSV(r)
	}
}
