package chart

import (
	"strings"
	"testing"
)

func TestRenderSparklineSingleRow(t *testing.T) {
	// min=1, max=9; normalized heights [0, 0.5, 0.25, 1.0, 0.125]
	g := RenderSparkline([]float64{1, 5, 3, 9, 2}, 1)

	got := g.String()
	want := " ▅▃█▂\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderSparklineMultiRow(t *testing.T) {
	g := RenderSparkline([]float64{0, 1, 2}, 2)

	got := g.String()
	want := "  █\n ██\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderSparklineFlatSeries(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		height int
		want   string
	}{
		{"constant values", []float64{5, 5, 5}, 1, "   \n"},
		{"all zero", []float64{0, 0}, 1, "  \n"},
		{"single element", []float64{7}, 1, " \n"},
		{"constant multi-row", []float64{3, 3}, 2, "  \n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSparkline(tt.series, tt.height).String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSparklineEmptySeries(t *testing.T) {
	g := RenderSparkline(nil, 3)

	if g.Rows() != 3 || g.Cols() != 0 {
		t.Fatalf("grid = %dx%d, want 3x0", g.Rows(), g.Cols())
	}
	if got := g.String(); got != "\n\n\n" {
		t.Errorf("String() = %q, want three empty lines", got)
	}
}

func TestRenderSparklineNegativeValues(t *testing.T) {
	// Linear normalization over a negative range: min=-2, max=0.
	got := RenderSparkline([]float64{-2, -1, 0}, 1).String()
	want := " ▅█\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderSparklineDimensions(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		height int
	}{
		{"single row", []float64{1, 2, 3, 4}, 1},
		{"four rows", []float64{1, 2, 3, 4}, 4},
		{"long series", make([]float64, 100), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := RenderSparkline(tt.series, tt.height)
			if g.Rows() != tt.height {
				t.Errorf("Rows() = %d, want %d", g.Rows(), tt.height)
			}
			if g.Cols() != len(tt.series) {
				t.Errorf("Cols() = %d, want %d", g.Cols(), len(tt.series))
			}

			// No resampling: every serialized row is exactly series-length wide
			for _, line := range strings.SplitAfter(g.String(), "\n") {
				if line == "" {
					continue
				}
				width := len([]rune(strings.TrimSuffix(line, "\n")))
				if width != len(tt.series) {
					t.Errorf("row width = %d, want %d", width, len(tt.series))
				}
			}
		})
	}
}

// fillIndex maps a cell to its ramp position: -1 for a space, 0..7 for
// ramp glyphs.
func fillIndex(t *testing.T, ch rune) int {
	t.Helper()
	if ch == ' ' {
		return -1
	}
	for i, r := range sparkRamp {
		if r == ch {
			return i
		}
	}
	t.Fatalf("cell %q is neither space nor ramp glyph", ch)
	return 0
}

func TestRenderSparklineMonotonic(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	for _, height := range []int{1, 2, 3} {
		g := RenderSparkline(series, height)
		for r := 0; r < g.Rows(); r++ {
			prev := -1
			for c := 0; c < g.Cols(); c++ {
				idx := fillIndex(t, g.At(r, c))
				if idx < prev {
					t.Errorf("height %d row %d: fill index decreased at column %d (%d -> %d)",
						height, r, c, prev, idx)
				}
				prev = idx
			}
		}
	}
}

func TestRenderSparklineCellsValid(t *testing.T) {
	g := RenderSparkline([]float64{3, -1, 4, 1, -5, 9, 2, 6}, 3)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			fillIndex(t, g.At(r, c)) // fails the test on any foreign rune
		}
	}
}

func TestRenderSparklineIdempotent(t *testing.T) {
	series := []float64{1, 5, 3, 9, 2}

	first := RenderSparkline(series, 2).String()
	second := RenderSparkline(series, 2).String()
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}
