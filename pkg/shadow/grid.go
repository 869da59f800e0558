package shadow

import (
	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
)

// Grid holds one score per cell, indexed [row][col].
type Grid [board.Size][board.Size]float64

// At returns the score of c.
func (g Grid) At(c board.Cell) float64 {
	return g[c.Row][c.Col]
}

// Max returns the highest score on the grid.
func (g Grid) Max() float64 {
	m := 0.0
	for _, row := range g {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

// Detection marks the cells classified as holding a block, indexed [row][col].
type Detection [board.Size][board.Size]bool

// Detect flags every cell whose score is at least threshold.
// The threshold must lie in (0, 1].
func Detect(g Grid, threshold float64) (Detection, error) {
	if err := errors.ValidateThreshold(threshold); err != nil {
		return Detection{}, err
	}
	var d Detection
	for r := range g {
		for c := range g[r] {
			d[r][c] = g[r][c] >= threshold
		}
	}
	return d, nil
}

// At reports whether c was detected.
func (d Detection) At(c board.Cell) bool {
	return d[c.Row][c.Col]
}

// Cells returns the detected cells in row-major order.
func (d Detection) Cells() []board.Cell {
	var cells []board.Cell
	for _, c := range board.Cells() {
		if d.At(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Labels returns the board labels of the detected cells in row-major order.
func (d Detection) Labels() []string {
	cells := d.Cells()
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.Label()
	}
	return labels
}

// Count returns the number of detected cells.
func (d Detection) Count() int {
	return len(d.Cells())
}
