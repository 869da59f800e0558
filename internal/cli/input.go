package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/config"
	"github.com/matzehuels/shadowboard/pkg/errors"
	"github.com/matzehuels/shadowboard/pkg/pipeline"
)

// inputOpts holds the flags shared by every command that runs the engine.
type inputOpts struct {
	preset    string   // named block arrangement
	blocks    []string // explicit block centers as "x,y"
	cells     []string // explicit blocks by cell label, e.g. "C3"
	angles    string   // comma-separated measurement angles in degrees
	threshold float64  // detection threshold in (0, 1]
}

// register attaches the input flags to cmd.
func (o *inputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.preset, "preset", "", "block preset (see 'shadowboard presets')")
	cmd.Flags().StringArrayVar(&o.blocks, "block", nil, "block center as x,y in board units (repeatable)")
	cmd.Flags().StringSliceVar(&o.cells, "cell", nil, "block at the center of a cell, e.g. C3 (repeatable)")
	cmd.Flags().StringVar(&o.angles, "angles", "", "measurement angles in degrees, comma-separated (default 0,45,90,135)")
	cmd.Flags().Float64Var(&o.threshold, "threshold", config.DefaultThreshold, "detection threshold in (0, 1]")
}

// options merges built-in defaults, the config file and the command-line
// flags, in increasing order of precedence.
func (o *inputOpts) options(cmd *cobra.Command, cfg config.Config) (pipeline.Options, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Preset:    cfg.Preset,
		Angles:    cfg.Angles,
		Threshold: cfg.Threshold,
		Formats:   cfg.Formats,
		Size:      cfg.Size,
		Colormap:  cfg.Colormap,
		Catalog:   catalog,
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		opts.Preset = o.preset
	}

	blocks, err := o.explicitBlocks()
	if err != nil {
		return pipeline.Options{}, err
	}
	if blocks != nil {
		if flags.Changed("preset") {
			return pipeline.Options{}, errors.InvalidInput("preset", "--preset cannot be combined with --block or --cell")
		}
		opts.Preset = ""
		opts.Blocks = blocks
	}

	if flags.Changed("angles") {
		angles, err := errors.ParseAngles("angles", o.angles)
		if err != nil {
			return pipeline.Options{}, err
		}
		if angles == nil {
			angles = []int{}
		}
		opts.Angles = angles
	}

	if flags.Changed("threshold") {
		if err := errors.ValidateThreshold(o.threshold); err != nil {
			return pipeline.Options{}, err
		}
		opts.Threshold = o.threshold
	}
	return opts, nil
}

// explicitBlocks returns the blocks given with --block and --cell, or nil
// when neither flag was used.
func (o *inputOpts) explicitBlocks() ([]board.Point, error) {
	if len(o.blocks) == 0 && len(o.cells) == 0 {
		return nil, nil
	}
	points := make([]board.Point, 0, len(o.blocks)+len(o.cells))
	for i, s := range o.blocks {
		p, err := board.ParsePoint(fmt.Sprintf("block[%d]", i), s)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	cells, err := board.CenterOf(o.cells...)
	if err != nil {
		return nil, err
	}
	return append(points, cells...), nil
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset. A missing default file is not an error.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	path, err := config.Path()
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOrDefault(path)
}
