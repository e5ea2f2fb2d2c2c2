package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/textspark/pkg/table"
)

// columnsCommand creates the columns command for inspecting classification.
func (c *CLI) columnsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "columns [file]",
		Short: "Show column classification for a data file",
		Long: `Show column classification for a data file.

For each column the command prints whether its sampled values classify as
numeric, non-numeric, or mixed, and which columns auto-selection would pick
as the data and label columns. Classification samples at most the first 10
rows of each column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runColumns(cmd.Context(), args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: csv, json, xlsx (inferred from extension)")

	return cmd
}

// runColumns loads the input and prints per-column classification.
func (c *CLI) runColumns(ctx context.Context, input, format string) error {
	logger := loggerFromContext(ctx)

	tbl, err := loadTable(input, format)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d rows, %d columns from %s", tbl.Len(), len(tbl.Columns()), input)

	printInfo("%d columns, %d rows", len(tbl.Columns()), tbl.Len())
	for _, name := range tbl.Columns() {
		col, _ := tbl.Column(name)
		printKeyValue(name, table.ClassifyColumn(col).String())
	}

	dataCol, ok := table.FirstNumericColumn(tbl)
	if !ok {
		printError("no numeric column qualifies as data column")
	} else {
		printKeyValue("data column", dataCol)
	}

	labelCol, ok := table.FirstNonNumericColumn(tbl)
	if !ok {
		labelCol = "(none)"
	}
	printKeyValue("label column", labelCol)

	return nil
}
