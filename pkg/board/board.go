package board

import (
	"fmt"
	"strings"

	"github.com/matzehuels/shadowboard/pkg/errors"
)

const (
	// Size is the number of cells along each board axis.
	Size = 5

	// CellSize is the edge length of one cell in board units.
	CellSize = 5.0

	// HalfExtent is the distance from the board center to its edge.
	HalfExtent = Size * CellSize / 2
)

// Point is a position in centered board coordinates.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Cell identifies one board cell by grid index.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Valid reports whether c lies on the board.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Center returns the center of c in board coordinates.
func (c Cell) Center() Point {
	return Point{
		X: float64(c.Col)*CellSize + CellSize/2 - HalfExtent,
		Y: HalfExtent - (float64(c.Row)*CellSize + CellSize/2),
	}
}

// Label returns the board marking for c, e.g. "C3".
func (c Cell) Label() string {
	return ColumnLabel(c.Col) + RowLabel(c.Row)
}

func (c Cell) String() string { return c.Label() }

// ColumnLabel returns the letter for column col ("A" for 0).
func ColumnLabel(col int) string {
	return string(rune('A' + col))
}

// RowLabel returns the number for grid row row ("5" for the top row).
func RowLabel(row int) string {
	return fmt.Sprintf("%d", Size-row)
}

// Cells returns all board cells in row-major order.
func Cells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// ParseCell parses a label such as "C3" or "d2".
func ParseCell(label string) (Cell, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) != 2 {
		return Cell{}, errors.InvalidInput("cell", "expected a label like C3, got %q", label)
	}
	col := int(s[0] - 'A')
	num := int(s[1] - '0')
	c := Cell{Row: Size - num, Col: col}
	if col < 0 || col >= Size || num < 1 || num > Size {
		return Cell{}, errors.InvalidInput("cell", "%q is not on the board (A1..E5)", label)
	}
	return c, nil
}

// ParsePoint parses an "x,y" coordinate pair. arg names the input in errors.
func ParsePoint(arg, s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, errors.InvalidInput(arg, "expected x,y, got %q", s)
	}
	x, err := errors.ParseFloat(arg, parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := errors.ParseFloat(arg, parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// CenterOf converts cell labels to the centers of the named cells.
func CenterOf(labels ...string) ([]Point, error) {
	points := make([]Point, 0, len(labels))
	for _, l := range labels {
		c, err := ParseCell(l)
		if err != nil {
			return nil, err
		}
		points = append(points, c.Center())
	}
	return points, nil
}
