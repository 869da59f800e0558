package render

import "github.com/matzehuels/shadowboard/pkg/board"

// DefaultSize is the default edge length of the plot area in pixels.
const DefaultSize = 600.0

const (
	marginLeft   = 40.0
	marginRight  = 20.0
	marginTop    = 50.0
	marginBottom = 40.0
)

// frame places the 5×5 plot inside an image with room for labels and title.
type frame struct {
	size float64 // plot edge length
	cell float64 // cell edge length
}

func newFrame(size float64) frame {
	if size <= 0 {
		size = DefaultSize
	}
	return frame{size: size, cell: size / board.Size}
}

func (f frame) width() float64  { return marginLeft + f.size + marginRight }
func (f frame) height() float64 { return marginTop + f.size + marginBottom }

// cellOrigin returns the top-left pixel of c.
func (f frame) cellOrigin(c board.Cell) (x, y float64) {
	return marginLeft + float64(c.Col)*f.cell, marginTop + float64(c.Row)*f.cell
}

// cellCenter returns the center pixel of c.
func (f frame) cellCenter(c board.Cell) (x, y float64) {
	x, y = f.cellOrigin(c)
	return x + f.cell/2, y + f.cell/2
}

func (f frame) markerRadius() float64 { return f.cell * 0.12 }
