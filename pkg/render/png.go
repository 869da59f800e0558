package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	size float64
}

// WithPNGSize sets the plot edge length in pixels (default [DefaultSize]).
func WithPNGSize(px float64) PNGOption { return func(r *pngRenderer) { r.size = px } }

// RenderPNG rasterises h. Unlike [RenderPDF] it needs no external tools.
func RenderPNG(h Heatmap, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{size: DefaultSize}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidateSize(r.size); err != nil {
		return nil, err
	}
	scale, err := h.scale()
	if err != nil {
		return nil, err
	}
	f := newFrame(r.size)

	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(f.width())), int(math.Ceil(f.height()))))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, c := range board.Cells() {
		x, y := f.cellOrigin(c)
		fillRect(img, x, y, f.cell, f.cell, scale.At(h.Scores.At(c)))
	}

	black := color.Black
	for i := 0; i <= board.Size; i++ {
		off := float64(i) * f.cell
		fillRect(img, marginLeft, marginTop+off, f.size+1, 1, black)
		fillRect(img, marginLeft+off, marginTop, 1, f.size+1, black)
	}

	marker, _ := colorful.Hex(markerColor)
	for _, c := range h.Detected.Cells() {
		cx, cy := f.cellCenter(c)
		fillCircle(img, cx, cy, f.markerRadius(), marker)
	}

	face := basicfont.Face7x13
	drawText(img, face, h.title(), f.width()/2, marginTop/2+5)
	for i := 0; i < board.Size; i++ {
		mid := (float64(i) + 0.5) * f.cell
		drawText(img, face, board.ColumnLabel(i), marginLeft+mid, marginTop+f.size+24)
		drawText(img, face, board.RowLabel(i), marginLeft/2, marginTop+mid+5)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fillRect(img draw.Image, x, y, w, h float64, c color.Color) {
	rect := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func fillCircle(img draw.Image, cx, cy, radius float64, c color.Color) {
	r2 := radius * radius
	for y := int(cy - radius); y <= int(cy+radius); y++ {
		for x := int(cx - radius); x <= int(cx+radius); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r2 {
				img.Set(x, y, c)
			}
		}
	}
}

// drawText draws s horizontally centered on x with its baseline at y.
func drawText(img draw.Image, face font.Face, s string, x, y float64) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	width := d.MeasureString(s).Round()
	d.Dot = fixed.P(int(x)-width/2, int(y))
	d.DrawString(s)
}
