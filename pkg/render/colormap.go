package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/shadowboard/pkg/errors"
)

// Colormap maps scores in [0, 1] onto a linear color ramp.
type Colormap struct {
	Low  string `json:"low" toml:"low"`   // hex color for score 0
	High string `json:"high" toml:"high"` // hex color for score 1
}

// Grayscale returns the default light-gray to black colormap.
func Grayscale() Colormap {
	return Colormap{Low: "#eeeeee", High: "#000000"}
}

// Scale is a parsed [Colormap] ready for lookups.
type Scale struct {
	low, high colorful.Color
}

// Scale parses both endpoints of m.
func (m Colormap) Scale() (Scale, error) {
	low, err := colorful.Hex(m.Low)
	if err != nil {
		return Scale{}, errors.InvalidInput("colormap.low", "invalid hex color %q", m.Low)
	}
	high, err := colorful.Hex(m.High)
	if err != nil {
		return Scale{}, errors.InvalidInput("colormap.high", "invalid hex color %q", m.High)
	}
	return Scale{low: low, high: high}, nil
}

// Validate reports whether both endpoints are valid hex colors.
func (m Colormap) Validate() error {
	_, err := m.Scale()
	return err
}

// At returns the color for score v. Values outside [0, 1] are clamped.
func (s Scale) At(v float64) colorful.Color {
	v = min(max(v, 0), 1)
	return s.low.BlendRgb(s.high, v).Clamped()
}

// Hex returns the color for score v as "#rrggbb".
func (s Scale) Hex(v float64) string {
	return s.At(v).Hex()
}

// IsDark reports whether text drawn over the color for v should be light.
func (s Scale) IsDark(v float64) bool {
	l, _, _ := s.At(v).Lab()
	return l < 0.5
}
