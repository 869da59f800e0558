// Package render turns score grids into heat-map visualizations.
//
// # Overview
//
// A [Heatmap] bundles everything a renderer needs: the score grid, the
// detection grid, the inputs that produced them, and a [Colormap]. Renderers
// are decoupled from scoring; they never compute scores themselves.
//
// Supported outputs:
//
//   - [RenderSVG]: vector heat-map with grid lines, A–E / 1–5 labels and a
//     marker on each detected cell
//   - [RenderPNG]: the same picture rasterised in-process
//   - [RenderPDF]: SVG converted with the external rsvg-convert tool
//   - [RenderJSON]: machine-readable scores and detections
//   - [RenderTerminal]: coloured table for the terminal
//
// # Colormaps
//
// A [Colormap] is a pair of hex colors. Score 0 maps to Low and score 1 to
// High, with linear RGB blending in between. [Grayscale] reproduces the
// light-gray to black ramp of the physical board's reference plots.
//
//	h := render.Heatmap{Scores: g, Detected: d, Colormap: render.Grayscale()}
//	svg, err := render.RenderSVG(h, render.WithScores())
package render
