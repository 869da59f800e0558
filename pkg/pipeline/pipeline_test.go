package pipeline

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
	"github.com/matzehuels/shadowboard/pkg/render"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"term", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Preset != board.DefaultPreset {
		t.Errorf("Preset = %q, want %q", opts.Preset, board.DefaultPreset)
	}
	if !slices.Equal(opts.Angles, []int{0, 45, 90, 135}) {
		t.Errorf("Angles = %v, want [0 45 90 135]", opts.Angles)
	}
	if opts.Threshold != 0.8 {
		t.Errorf("Threshold = %v, want 0.8", opts.Threshold)
	}
	if !slices.Equal(opts.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Colormap != render.Grayscale() {
		t.Errorf("Colormap = %+v, want grayscale", opts.Colormap)
	}
	if opts.Size != render.DefaultSize {
		t.Errorf("Size = %v, want %v", opts.Size, render.DefaultSize)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if opts.Catalog == nil {
		t.Error("Catalog should default to the builtin presets")
	}
}

func TestOptionsExplicitBlocksSkipPreset(t *testing.T) {
	opts := Options{Blocks: []board.Point{{X: 0, Y: 0}}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Preset != "" {
		t.Errorf("Preset = %q, want empty when blocks are given", opts.Preset)
	}
}

func TestOptionsValidateForScore(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		code    errors.Code
		wantArg string
	}{
		{"empty angles", Options{Angles: []int{}}, errors.ErrCodeInvalidInput, "angles"},
		{"threshold too high", Options{Threshold: 1.5}, errors.ErrCodeInvalidInput, "threshold"},
		{"negative threshold", Options{Threshold: -0.2}, errors.ErrCodeInvalidInput, "threshold"},
		{"unknown preset", Options{Preset: "nope"}, errors.ErrCodeInvalidPreset, ""},
		{"blocks and preset", Options{Preset: "center", Blocks: []board.Point{{}}}, errors.ErrCodeInvalidInput, "blocks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForScore()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.code)
			}
			if got := errors.Arg(err); got != tt.wantArg {
				t.Errorf("arg = %q, want %q", got, tt.wantArg)
			}
		})
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad format", Options{Formats: []string{"gif"}}},
		{"negative size", Options{Size: -1}},
		{"nan size", Options{Size: math.NaN()}},
		{"infinite size", Options{Size: math.Inf(1)}},
		{"huge size", Options{Size: 1e7}},
		{"bad colormap", Options{Colormap: render.Colormap{Low: "white", High: "#000000"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateForRender(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Preset: "diagonal", Angles: []int{30}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First call: %v", err)
	}
	first := opts

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second call: %v", err)
	}

	if opts.Preset != first.Preset || opts.Threshold != first.Threshold || opts.Size != first.Size {
		t.Errorf("options changed on second call: %+v vs %+v", opts, first)
	}
	if !slices.Equal(opts.Angles, []int{30}) {
		t.Errorf("Angles = %v, want [30]", opts.Angles)
	}
}

func TestSetScoreDefaultsDoesNotAliasDefaults(t *testing.T) {
	var opts Options
	opts.SetScoreDefaults()
	opts.Angles[0] = 999

	var again Options
	again.SetScoreDefaults()
	if again.Angles[0] != 0 {
		t.Errorf("default angles were mutated through a previous Options: %v", again.Angles)
	}
}

func TestResolveBlocks(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []board.Point
	}{
		{"standard preset", Options{Preset: "standard"}, []board.Point{{X: 0, Y: -5}, {X: 0, Y: 0}, {X: 5, Y: -5}}},
		{"center preset", Options{Preset: "center"}, []board.Point{{X: 0, Y: 0}}},
		{"explicit", Options{Blocks: []board.Point{{X: 1.5, Y: 2}}}, []board.Point{{X: 1.5, Y: 2}}},
		{"explicit empty", Options{Blocks: []board.Point{}}, []board.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.ResolveBlocks()
			if err != nil {
				t.Fatalf("ResolveBlocks: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ResolveBlocks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveBlocksCustomCatalog(t *testing.T) {
	catalog, err := board.Builtin().With("pair", []string{"A1", "E5"})
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Preset: "pair", Catalog: catalog}
	if err := opts.ValidateForScore(); err != nil {
		t.Fatalf("ValidateForScore: %v", err)
	}
	got, err := opts.ResolveBlocks()
	if err != nil {
		t.Fatalf("ResolveBlocks: %v", err)
	}
	want := []board.Point{{X: -10, Y: -10}, {X: 10, Y: 10}}
	if !slices.Equal(got, want) {
		t.Errorf("ResolveBlocks() = %v, want %v", got, want)
	}
}
