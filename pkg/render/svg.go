package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size       float64
	showScores bool
}

// WithSize sets the plot edge length in pixels (default [DefaultSize]).
func WithSize(px float64) SVGOption { return func(r *svgRenderer) { r.size = px } }

// WithScores prints each cell's score inside the cell.
func WithScores() SVGOption { return func(r *svgRenderer) { r.showScores = true } }

// RenderSVG renders h as a standalone SVG document.
func RenderSVG(h Heatmap, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{size: DefaultSize}
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

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.width(), f.height(), f.width(), f.height())
	buf.WriteString(`  <rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="18" font-weight="bold">%s</text>`+"\n",
		f.width()/2, marginTop/2+6, html.EscapeString(h.title()))

	for _, c := range board.Cells() {
		renderSVGCell(&buf, f, scale, h, c, r.showScores)
	}
	renderSVGGrid(&buf, f)
	renderSVGLabels(&buf, f)
	for _, c := range h.Detected.Cells() {
		cx, cy := f.cellCenter(c)
		fmt.Fprintf(&buf, `  <circle class="marker" id="marker-%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			c.Label(), cx, cy, f.markerRadius(), markerColor)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderSVGCell(buf *bytes.Buffer, f frame, s Scale, h Heatmap, c board.Cell, showScore bool) {
	v := h.Scores.At(c)
	x, y := f.cellOrigin(c)
	fmt.Fprintf(buf, `  <rect class="cell" id="cell-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" data-score="%.4f"/>`+"\n",
		c.Label(), x, y, f.cell, f.cell, s.Hex(v), v)

	if !showScore {
		return
	}
	fill := "#000000"
	if s.IsDark(v) {
		fill = "#ffffff"
	}
	cx, cy := f.cellCenter(c)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="%s">%.2f</text>`+"\n",
		cx, cy+f.cell*0.3, fill, v)
}

// renderSVGGrid draws lines at every 5-unit cell boundary.
func renderSVGGrid(buf *bytes.Buffer, f frame) {
	for i := 0; i <= board.Size; i++ {
		off := float64(i) * f.cell
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000" stroke-width="1"/>`+"\n",
			marginLeft, marginTop+off, marginLeft+f.size, marginTop+off)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000" stroke-width="1"/>`+"\n",
			marginLeft+off, marginTop, marginLeft+off, marginTop+f.size)
	}
}

func renderSVGLabels(buf *bytes.Buffer, f frame) {
	for i := 0; i < board.Size; i++ {
		mid := (float64(i) + 0.5) * f.cell
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text>`+"\n",
			marginLeft+mid, marginTop+f.size+24, board.ColumnLabel(i))
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text>`+"\n",
			marginLeft/2, marginTop+mid+5, board.RowLabel(i))
	}
}
