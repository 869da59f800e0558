// Package pkg provides the core libraries for Shadowboard.
//
// # Overview
//
// Shadowboard reconstructs where blocks sit on a 5x5 board from the shadows
// they cast. Each measurement angle projects every block onto a line; the
// band a block covers is back-projected over the board, and a cell's score
// is the fraction of angles whose bands cover it. Cells with a score at or
// above a threshold are reported as detected blocks.
//
// # Architecture
//
// The typical data flow:
//
//	Preset / explicit block coordinates
//	         ↓
//	    [board] package (cells, labels, presets)
//	         ↓
//	    [shadow] package (half-widths, bands, score grid, detection)
//	         ↓
//	    [render] package (SVG, PNG, PDF, JSON, terminal heat-maps)
//
// [pipeline] runs these stages with defaults, validation and logging and is
// shared by every command of the CLI, including the interactive UI.
//
// # Quick Start
//
//	blocks, _ := board.Builtin().Blocks("standard")
//	scores, _ := shadow.ComputeShadowScore(blocks, []int{0, 45, 90, 135})
//	detected, _ := shadow.Detect(scores, 0.8)
//	fmt.Println(detected.Labels()) // [C3 C2 D2]
//
// # Main Packages
//
// [board] - Board geometry: cell centers, A1..E5 labels, named presets.
//
// [shadow] - The back-projection engine. Pure functions, no I/O.
//
// [render] - Heat-map renderers with a configurable two-color colormap.
//
// [pipeline] - Score → detect → render orchestration used by the CLI.
//
// [config] - TOML configuration file (defaults, colormap, custom presets).
//
// [errors] - Structured error codes with the name of the rejected argument.
//
// [observability] - Optional hooks around pipeline stages.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/shadow/...   # Specific package
//	go test -run Example       # Examples only
package pkg
