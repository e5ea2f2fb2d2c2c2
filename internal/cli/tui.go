package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/textspark/pkg/chart"
	"github.com/matzehuels/textspark/pkg/table"
)

// maxPreviewHeight bounds interactive height adjustment.
const maxPreviewHeight = 8

// Preview styles
var (
	previewChartStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	previewColumnStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// tuiCommand creates the tui command for interactive chart preview.
func (c *CLI) tuiCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "Preview charts interactively",
		Long: `Preview charts interactively.

Opens a terminal UI that renders the selected column as a sparkline and
lets you cycle through columns and adjust the chart height live.

Keys:
  left/h, right/l  cycle data column
  up/k, down/j     adjust chart height
  q, esc           quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(args[0], format)
			if err != nil {
				return err
			}
			model, err := newPreviewModel(tbl, c.Config.Height)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: csv, json, xlsx (inferred from extension)")

	return cmd
}

// =============================================================================
// previewModel - Interactive Chart Preview
// =============================================================================

// previewModel is the bubbletea model for the interactive preview.
type previewModel struct {
	tbl     *table.Table
	columns []string
	cursor  int
	height  int
}

// newPreviewModel builds the preview state, starting at the auto-selected
// data column when one exists.
func newPreviewModel(tbl *table.Table, height int) (previewModel, error) {
	columns := tbl.Columns()
	if len(columns) == 0 {
		return previewModel{}, fmt.Errorf("table has no columns to preview")
	}
	if height < 1 {
		height = 1
	}

	cursor := 0
	if name, ok := table.FirstNumericColumn(tbl); ok {
		for i, col := range columns {
			if col == name {
				cursor = i
				break
			}
		}
	}

	return previewModel{
		tbl:     tbl,
		columns: columns,
		cursor:  cursor,
		height:  height,
	}, nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.cursor = (m.cursor + len(m.columns) - 1) % len(m.columns)
		case "right", "l":
			m.cursor = (m.cursor + 1) % len(m.columns)
		case "up", "k":
			if m.height < maxPreviewHeight {
				m.height++
			}
		case "down", "j":
			if m.height > 1 {
				m.height--
			}
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	name := m.columns[m.cursor]
	series, _ := m.tbl.Series(name)

	var b strings.Builder
	b.WriteString(StyleTitle.Render(appName) + "\n\n")
	b.WriteString(previewChartStyle.Render(chart.RenderSparkline(series, m.height).String()))
	b.WriteString("\n")
	b.WriteString(previewColumnStyle.Render(name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  column %d/%d · height %d · %d points",
		m.cursor+1, len(m.columns), m.height, len(series))))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("←/→ column · ↑/↓ height · q quit"))
	b.WriteString("\n")
	return b.String()
}
