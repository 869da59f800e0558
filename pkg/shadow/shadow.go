package shadow

import (
	"fmt"
	"math"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
)

const (
	// angleOffset is the silhouette correction applied before computing the band width.
	angleOffset = 45

	// shrink narrows every band so that centers exactly on an edge are not hit.
	shrink = 0.1
)

// diagonal is the diagonal extent of one block.
var diagonal = math.Sqrt2 * board.CellSize

// Band is one block's shadow interval for a single angle.
type Band struct {
	Min, Max float64
}

// Contains reports whether v lies inside the band, bounds included.
func (b Band) Contains(v float64) bool {
	return b.Min <= v && v <= b.Max
}

// HalfWidth returns the shadow band half-width at angle degrees.
func HalfWidth(angle int) float64 {
	adjusted := angle + angleOffset
	if angle > 90 {
		adjusted = angle - angleOffset
	}
	c := diagonal / 2 * (1 + math.Cos(radians(adjusted)))
	return math.Sqrt((diagonal-c)*c) - shrink
}

// Project maps p onto the measurement direction of angle degrees.
// The axis-aligned angles use the coordinate directly so that no
// floating-point residue from cos(90°) leaks into the result.
func Project(p board.Point, angle int) float64 {
	switch angle {
	case 0:
		return p.X
	case 90:
		return p.Y
	default:
		r := radians(angle)
		return p.X*math.Cos(r) + p.Y*math.Sin(r)
	}
}

// Bands returns the shadow band of every block at angle, in block order.
func Bands(blocks []board.Point, angle int) []Band {
	w := HalfWidth(angle)
	bands := make([]Band, len(blocks))
	for i, b := range blocks {
		p := Project(b, angle)
		bands[i] = Band{Min: p - w, Max: p + w}
	}
	return bands
}

// ComputeShadowScore accumulates hits over all angles and returns the
// per-cell fraction of angles at which the cell lay in some block's shadow.
//
// It fails with INVALID_INPUT when angles is empty or a block coordinate is
// not finite. An empty block list yields an all-zero grid.
func ComputeShadowScore(blocks []board.Point, angles []int) (Grid, error) {
	if err := errors.ValidateAngles(angles); err != nil {
		return Grid{}, err
	}
	for i, b := range blocks {
		arg := fmt.Sprintf("blocks[%d]", i)
		if err := errors.ValidateCoordinate(arg, b.X); err != nil {
			return Grid{}, err
		}
		if err := errors.ValidateCoordinate(arg, b.Y); err != nil {
			return Grid{}, err
		}
	}

	var hits [board.Size][board.Size]int
	for _, angle := range angles {
		bands := Bands(blocks, angle)
		for _, c := range board.Cells() {
			if inAny(bands, Project(c.Center(), angle)) {
				hits[c.Row][c.Col]++
			}
		}
	}

	var g Grid
	n := float64(len(angles))
	for r := range hits {
		for c := range hits[r] {
			g[r][c] = float64(hits[r][c]) / n
		}
	}
	return g, nil
}

func inAny(bands []Band, v float64) bool {
	for _, b := range bands {
		if b.Contains(v) {
			return true
		}
	}
	return false
}

func radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
