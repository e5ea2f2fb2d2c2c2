// Package chart renders tabular numeric data as compact text charts.
//
// The package orchestrates the full data flow: raw input is resolved into a
// column-oriented table (see [github.com/matzehuels/textspark/pkg/table]),
// data and label columns are selected explicitly or by classification, and
// each selected data column is rendered independently with its output
// appended in selection order.
//
// # Usage
//
//	out, err := chart.Generate(chart.Options{
//	    Data:   []float64{1, 5, 3, 9, 2},
//	    Type:   chart.TypeSparkline,
//	    Height: 2,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(out)
//
// Generation is a pure function over in-memory data: no I/O, no hidden
// state, deterministic output for identical inputs.
package chart

import (
	"strings"

	"github.com/matzehuels/textspark/pkg/errors"
	"github.com/matzehuels/textspark/pkg/table"
)

// =============================================================================
// Chart Types
// =============================================================================

// Type identifies a chart type.
type Type string

// Supported chart types. Bar, column, line and pie are recognized names but
// not implemented; requesting them is an UNSUPPORTED_TYPE error.
const (
	TypeSparkline Type = "sparkline"
)

// supportedTypes is the set of implemented chart types.
var supportedTypes = map[Type]bool{
	TypeSparkline: true,
}

// DefaultHeight is the default vertical resolution in text rows.
const DefaultHeight = 1

// =============================================================================
// Options - Generation Configuration
// =============================================================================

// Options configures a single chart generation.
type Options struct {
	// Data is the input to plot. Required. Accepts a *table.Table or any
	// shape table.From understands (flat numbers, rows, records).
	Data any

	// ColumnNames optionally renames positional columns produced by
	// row-shaped input, acting as a table-shape hint.
	ColumnNames []string

	// Type is the chart type. Required.
	Type Type

	// DataColumns selects the column(s) to plot, in order. When empty, the
	// first numeric column is auto-selected.
	DataColumns []string

	// LabelColumn selects the column identifying each data point. When
	// empty, the first non-numeric column is auto-selected.
	LabelColumn string

	// ShowLabels requests label display. Label rendering itself is not
	// part of the chart block; setting this only makes a missing label
	// column a hard error instead of a silent absence.
	ShowLabels bool

	// Height is the vertical resolution in text rows. Defaults to 1.
	Height int

	// Width is reserved for future resampling support. The renderer
	// performs no resampling: output width always equals series length.
	Width int

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Data == nil {
		return errors.New(errors.ErrCodeMissingInput, "data is required")
	}
	if o.Type == "" {
		return errors.New(errors.ErrCodeMissingType, "chart type is required")
	}
	if !supportedTypes[o.Type] {
		return errors.New(errors.ErrCodeUnsupportedType, "unsupported chart type %q", o.Type)
	}

	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := errors.ValidateChartHeight(o.Height); err != nil {
		return err
	}

	for _, name := range o.DataColumns {
		if err := errors.ValidateColumnName(name); err != nil {
			return err
		}
	}
	if o.LabelColumn != "" {
		if err := errors.ValidateColumnName(o.LabelColumn); err != nil {
			return err
		}
	}

	o.validated = true
	return nil
}

// =============================================================================
// Generation
// =============================================================================

// Generate renders a chart from the given options and returns its textual
// representation: one serialized grid per selected data column, concatenated
// in selection order. Errors are total failures; no partial output is ever
// returned.
func Generate(opts Options) (string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", err
	}

	tbl, err := resolveTable(opts)
	if err != nil {
		return "", err
	}

	dataCols, err := resolveDataColumns(tbl, opts)
	if err != nil {
		return "", err
	}

	if _, err := resolveLabelColumn(tbl, opts); err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, name := range dataCols {
		series, _ := tbl.Series(name)
		buf.WriteString(RenderSparkline(series, opts.Height).String())
	}
	return buf.String(), nil
}

// resolveTable ingests the input data and applies the column-name hint.
func resolveTable(opts Options) (*table.Table, error) {
	tbl, err := table.From(opts.Data)
	if err != nil {
		return nil, err
	}

	if len(opts.ColumnNames) == 0 {
		return tbl, nil
	}

	existing := tbl.Columns()
	if len(opts.ColumnNames) != len(existing) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"column name hint has %d names, table has %d columns",
			len(opts.ColumnNames), len(existing))
	}

	renamed := table.New()
	for i, old := range existing {
		col, _ := tbl.Column(old)
		if err := renamed.AddColumn(opts.ColumnNames[i], col); err != nil {
			return nil, err
		}
	}
	return renamed, nil
}

// resolveDataColumns picks the column(s) to plot: explicit selection wins,
// otherwise the first numeric column by classification. Finding nothing to
// plot is fatal.
func resolveDataColumns(tbl *table.Table, opts Options) ([]string, error) {
	if len(opts.DataColumns) > 0 {
		for _, name := range opts.DataColumns {
			if !tbl.HasColumn(name) {
				return nil, errors.New(errors.ErrCodeUnknownColumn, "data column %q not found", name)
			}
		}
		return opts.DataColumns, nil
	}

	name, ok := table.FirstNumericColumn(tbl)
	if !ok {
		return nil, errors.New(errors.ErrCodeNoNumericColumn, "no numeric column found to plot")
	}
	return []string{name}, nil
}

// resolveLabelColumn picks the label column: explicit selection wins,
// otherwise the first non-numeric column. Absence is only an error when
// label display was explicitly requested.
func resolveLabelColumn(tbl *table.Table, opts Options) (string, error) {
	if opts.LabelColumn != "" {
		if !tbl.HasColumn(opts.LabelColumn) {
			return "", errors.New(errors.ErrCodeUnknownColumn, "label column %q not found", opts.LabelColumn)
		}
		return opts.LabelColumn, nil
	}

	name, ok := table.FirstNonNumericColumn(tbl)
	if !ok {
		if opts.ShowLabels {
			return "", errors.New(errors.ErrCodeNoLabelColumn, "no label column found")
		}
		return "", nil
	}
	return name, nil
}
