package chart

import (
	"math"
	"strings"
)

// sparkRamp is the glyph ramp used to quantize bar heights: eight block
// characters of strictly increasing fill, indexed 0 (lowest) to 7 (full).
// Process-wide constant, never mutated, safe for concurrent reads.
var sparkRamp = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Grid is a rows × cols character buffer for one rendered sparkline.
// Every cell is either a space or exactly one ramp glyph.
type Grid struct {
	rows  int
	cols  int
	cells []rune
}

// newGrid creates a blank grid of the given dimensions.
func newGrid(rows, cols int) *Grid {
	cells := make([]rune, rows*cols)
	for i := range cells {
		cells[i] = ' '
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// At returns the character at row r, column c. Row 0 is the top row.
func (g *Grid) At(r, c int) rune {
	return g.cells[r*g.cols+c]
}

// set writes a character at row r, column c.
func (g *Grid) set(r, c int, ch rune) {
	g.cells[r*g.cols+c] = ch
}

// String serializes the grid row-major, top to bottom, with a line break
// after every row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderSparkline renders a numeric series as a sparkline grid of the given
// height (in text rows). Height must be >= 1; the caller validates it.
//
// Each value is normalized against the series min/max to a height fraction
// in [0, height], then quantized row by row against the glyph ramp. A flat
// series (max == min, including single-element and all-zero series) has no
// contrast to show and renders fully blank. An empty series renders as
// height rows of zero columns.
//
// For each output row, counted top to bottom, the row covers the height
// band (h1, h1+1] where h1 = height - line. A column whose normalized
// height clears the band entirely gets the full block; one ending inside
// the band gets the partial glyph round((h - h1) * 7), rounding half away
// from zero; one below the band stays blank.
func RenderSparkline(series []float64, height int) *Grid {
	g := newGrid(height, len(series))
	if len(series) == 0 {
		return g
	}

	min, max := series[0], series[0]
	for _, d := range series[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if max == min {
		return g
	}

	scale := float64(height) / (max - min)
	for i, d := range series {
		h := (d - min) * scale
		for line := 1; line <= height; line++ {
			h1 := float64(height - line)
			switch {
			case h > h1+1:
				g.set(line-1, i, sparkRamp[len(sparkRamp)-1])
			case h > h1:
				idx := int(math.Round((h - h1) * float64(len(sparkRamp)-1)))
				g.set(line-1, i, sparkRamp[idx])
			}
		}
	}
	return g
}
