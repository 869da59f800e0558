// Package pipeline runs the score → detect → render sequence for shadowboard.
//
// Both the one-shot CLI commands and the interactive UI go through a
// [Runner] so that defaults, validation and logging behave the same
// everywhere. Every call is a full, independent recomputation: nothing is
// cached or shared between runs.
//
// # Stages
//
//  1. Score: resolve blocks (explicit or preset), compute the score grid
//  2. Detect: classify cells against the threshold
//  3. Render: produce artifacts in the requested formats
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Preset:  "standard",
//	    Angles:  []int{0, 45, 90, 135},
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/config"
	"github.com/matzehuels/shadowboard/pkg/errors"
	"github.com/matzehuels/shadowboard/pkg/render"
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
	FormatTerminal = "term"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatTerminal: true,
}

// Options contains all inputs for one pipeline run.
// Zero values mean "use the default" except for Angles, where an empty
// non-nil slice is an error rather than a request for defaults.
type Options struct {
	// Score options
	Preset    string        `json:"preset,omitempty"`
	Blocks    []board.Point `json:"blocks,omitempty"`
	Angles    []int         `json:"angles,omitempty"`
	Threshold float64       `json:"threshold,omitempty"`

	// Render options
	Formats    []string        `json:"formats,omitempty"`
	Colormap   render.Colormap `json:"colormap,omitempty"`
	Title      string          `json:"title,omitempty"`
	Size       float64         `json:"size,omitempty"`
	ShowScores bool            `json:"show_scores,omitempty"`

	// Runtime options (not serialized)
	Catalog board.Catalog `json:"-"`
	Logger  *log.Logger   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, term)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and checks every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScore(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetScoreDefaults fills in preset, catalog, angles and threshold.
func (o *Options) SetScoreDefaults() {
	if o.Blocks == nil && o.Preset == "" {
		o.Preset = board.DefaultPreset
	}
	if o.Catalog == nil {
		o.Catalog = board.Builtin()
	}
	if o.Angles == nil {
		o.Angles = slices.Clone(config.DefaultAngles)
	}
	if o.Threshold == 0 {
		o.Threshold = config.DefaultThreshold
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForScore sets score defaults and validates the score inputs.
func (o *Options) ValidateForScore() error {
	o.SetScoreDefaults()
	if o.Blocks != nil && o.Preset != "" {
		return errors.InvalidInput("blocks", "explicit blocks and preset %q are mutually exclusive", o.Preset)
	}
	if err := errors.ValidateAngles(o.Angles); err != nil {
		return err
	}
	if err := errors.ValidateThreshold(o.Threshold); err != nil {
		return err
	}
	if o.Preset != "" && !o.Catalog.Has(o.Preset) {
		return errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q (available: %v)", o.Preset, o.Catalog.Names())
	}
	return nil
}

// SetRenderDefaults fills in formats, colormap and size.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Colormap == (render.Colormap{}) {
		o.Colormap = render.Grayscale()
	}
	if o.Size == 0 {
		o.Size = render.DefaultSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets render defaults and validates the render options.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateSize(o.Size); err != nil {
		return err
	}
	return o.Colormap.Validate()
}

// ResolveBlocks returns the explicit blocks, or the preset's blocks.
func (o *Options) ResolveBlocks() ([]board.Point, error) {
	if o.Blocks != nil {
		return o.Blocks, nil
	}
	catalog := o.Catalog
	if catalog == nil {
		catalog = board.Builtin()
	}
	return catalog.Blocks(o.Preset)
}
