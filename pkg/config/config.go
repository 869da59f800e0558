// Package config loads shadowboard settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/shadowboard/config.toml, falling back to
// ~/.config/shadowboard/config.toml. Every key is optional; missing keys keep
// the built-in defaults. Unknown keys are rejected so that typos surface.
//
//	preset    = "standard"
//	angles    = [0, 45, 90, 135]
//	threshold = 0.8
//	formats   = ["svg"]
//	size      = 600
//
//	[colormap]
//	low  = "#eeeeee"
//	high = "#000000"
//
//	[[presets]]
//	name  = "pair"
//	cells = ["B2", "D4"]
//
// Command-line flags take precedence over the file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shadowboard/pkg/board"
	"github.com/matzehuels/shadowboard/pkg/errors"
	"github.com/matzehuels/shadowboard/pkg/render"
)

const (
	appName  = "shadowboard"
	fileName = "config.toml"

	// DefaultThreshold is the detection threshold used when none is configured.
	DefaultThreshold = 0.8
)

// DefaultAngles are the measurement angles used when none are configured.
var DefaultAngles = []int{0, 45, 90, 135}

// Config holds user settings.
type Config struct {
	Preset    string          `toml:"preset"`
	Angles    []int           `toml:"angles"`
	Threshold float64         `toml:"threshold"`
	Formats   []string        `toml:"formats"`
	Size      float64         `toml:"size"`
	Colormap  render.Colormap `toml:"colormap"`
	Presets   []Preset        `toml:"presets"`
}

// Preset is a user-defined block arrangement.
type Preset struct {
	Name  string   `toml:"name"`
	Cells []string `toml:"cells"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Preset:    board.DefaultPreset,
		Angles:    slices.Clone(DefaultAngles),
		Threshold: DefaultThreshold,
		Formats:   []string{"svg"},
		Size:      render.DefaultSize,
		Colormap:  render.Grayscale(),
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of [Default] and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// LoadOrDefault is like [Load] but returns [Default] when path does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks values that can be checked without a command context.
func (c Config) Validate() error {
	if c.Angles != nil {
		if err := errors.ValidateAngles(c.Angles); err != nil {
			return err
		}
	}
	if err := errors.ValidateThreshold(c.Threshold); err != nil {
		return err
	}
	if c.Size != 0 {
		if err := errors.ValidateSize(c.Size); err != nil {
			return err
		}
	}
	if err := c.Colormap.Validate(); err != nil {
		return err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	if c.Preset != "" && !catalog.Has(c.Preset) {
		return errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", c.Preset)
	}
	return nil
}

// Catalog returns the built-in presets extended with the configured ones.
// A configured preset replaces a built-in one of the same name.
func (c Config) Catalog() (board.Catalog, error) {
	catalog := board.Builtin()
	for _, p := range c.Presets {
		var err error
		if catalog, err = catalog.With(p.Name, p.Cells); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
