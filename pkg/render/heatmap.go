package render

import (
	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/shadow"
)

// DefaultTitle is used when a Heatmap has no title.
const DefaultTitle = "Shadow back-projection & detected blocks"

// markerColor is the fill of detected-cell markers.
const markerColor = "#d62728"

// Heatmap is the input to every renderer.
type Heatmap struct {
	Scores    shadow.Grid
	Detected  shadow.Detection
	Threshold float64
	Angles    []int
	Blocks    []board.Point
	Colormap  Colormap
	Title     string
}

func (h Heatmap) title() string {
	if h.Title == "" {
		return DefaultTitle
	}
	return h.Title
}

func (h Heatmap) scale() (Scale, error) {
	cm := h.Colormap
	if cm == (Colormap{}) {
		cm = Grayscale()
	}
	return cm.Scale()
}
