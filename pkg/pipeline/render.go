package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/shadowboard/pkg/render"
)

// Render produces a single artifact for the given format.
func Render(ctx context.Context, h render.Heatmap, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(h, buildSVGOptions(opts)...)
	case FormatPNG:
		return render.RenderPNG(h, render.WithPNGSize(sizeOrDefault(opts.Size)))
	case FormatPDF:
		return render.RenderPDF(ctx, h, buildSVGOptions(opts)...)
	case FormatJSON:
		return render.RenderJSON(h)
	case FormatTerminal:
		s, err := render.RenderTerminal(h)
		return []byte(s), err
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func buildSVGOptions(opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{render.WithSize(sizeOrDefault(opts.Size))}
	if opts.ShowScores {
		svgOpts = append(svgOpts, render.WithScores())
	}
	return svgOpts
}

func sizeOrDefault(size float64) float64 {
	if size <= 0 {
		return render.DefaultSize
	}
	return size
}
