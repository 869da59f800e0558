package render

import (
	"encoding/json"

	"github.com/matzehuels/shadowboard/pkg/board"
)

type jsonOutput struct {
	Title     string        `json:"title"`
	Threshold float64       `json:"threshold"`
	Angles    []int         `json:"angles"`
	Blocks    []board.Point `json:"blocks"`
	Colormap  Colormap      `json:"colormap"`
	Scores    [][]float64   `json:"scores"` // rows top to bottom
	Cells     []jsonCell    `json:"cells"`
	Detected  []string      `json:"detected"`
}

type jsonCell struct {
	Label    string  `json:"label"`
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Score    float64 `json:"score"`
	Color    string  `json:"color"`
	Detected bool    `json:"detected,omitempty"`
}

// RenderJSON exports h as a pretty-printed JSON document. Each cell carries
// its label, center, score and rendered color, so external tools can redraw
// the heat-map without recomputing anything.
func RenderJSON(h Heatmap) ([]byte, error) {
	scale, err := h.scale()
	if err != nil {
		return nil, err
	}
	cm := h.Colormap
	if cm == (Colormap{}) {
		cm = Grayscale()
	}

	out := jsonOutput{
		Title:     h.title(),
		Threshold: h.Threshold,
		Angles:    h.Angles,
		Blocks:    h.Blocks,
		Colormap:  cm,
		Scores:    make([][]float64, board.Size),
		Cells:     make([]jsonCell, 0, board.Size*board.Size),
		Detected:  h.Detected.Labels(),
	}
	if out.Angles == nil {
		out.Angles = []int{}
	}
	if out.Blocks == nil {
		out.Blocks = []board.Point{}
	}
	for r := range h.Scores {
		out.Scores[r] = h.Scores[r][:]
	}
	for _, c := range board.Cells() {
		center := c.Center()
		v := h.Scores.At(c)
		out.Cells = append(out.Cells, jsonCell{
			Label:    c.Label(),
			Row:      c.Row,
			Col:      c.Col,
			X:        center.X,
			Y:        center.Y,
			Score:    v,
			Color:    scale.Hex(v),
			Detected: h.Detected.At(c),
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
