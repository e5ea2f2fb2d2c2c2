package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/textspark/pkg/chart"
)

// chartCommand creates the chart command for rendering a data file.
func (c *CLI) chartCommand() *cobra.Command {
	var (
		typeStr     string
		format      string
		output      string
		labelColumn string
		dataColumns []string
		height      int
		width       int
		showLabels  bool
	)

	cmd := &cobra.Command{
		Use:   "chart [file]",
		Short: "Render a sparkline chart from a data file",
		Long: `Render a sparkline chart from a data file.

The chart command reads tabular data from a CSV, XLSX, or JSON file (or
stdin with "-") and renders the selected numeric column(s) as a sparkline.
When no data column is given, the first column whose sampled values are all
numeric is selected automatically.

JSON input may be a flat array of numbers, an array of arrays, or an array
of records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runChart(cmd.Context(), args[0], chart.Options{
				Type:        chart.Type(typeStr),
				DataColumns: dataColumns,
				LabelColumn: labelColumn,
				ShowLabels:  showLabels,
				Height:      height,
				Width:       width,
			}, format, output)
		},
	}

	cmd.Flags().StringVarP(&typeStr, "type", "t", c.Config.Type, "chart type (sparkline)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: csv, json, xlsx (inferred from extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVar(&dataColumns, "data-column", nil, "data column(s) to plot, in order")
	cmd.Flags().StringVar(&labelColumn, "label-column", "", "column identifying each data point")
	cmd.Flags().BoolVar(&showLabels, "labels", false, "require a label column to be present")
	cmd.Flags().IntVar(&height, "height", c.Config.Height, "chart height in text rows")
	cmd.Flags().IntVar(&width, "width", 0, "reserved; output width always equals series length")

	return cmd
}

// runChart loads the input, generates the chart, and writes the result.
func (c *CLI) runChart(ctx context.Context, input string, opts chart.Options, format, output string) error {
	logger := loggerFromContext(ctx)

	p := newProgress(logger)
	tbl, err := loadTable(input, format)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d rows, %d columns from %s", tbl.Len(), len(tbl.Columns()), input)

	opts.Data = tbl
	out, err := chart.Generate(opts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d series", max(1, len(opts.DataColumns))))

	if output == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Chart written")
	printFile(output)
	return nil
}
