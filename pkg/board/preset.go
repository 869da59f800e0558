package board

import (
	"maps"
	"slices"

	"github.com/matzehuels/shadowboard/pkg/errors"
)

// DefaultPreset is the arrangement used when no blocks are given.
const DefaultPreset = "standard"

// Catalog maps preset names to cell labels.
type Catalog map[string][]string

// Builtin returns a fresh copy of the built-in presets.
func Builtin() Catalog {
	return Catalog{
		"standard": {"C2", "C3", "D2"},
		"center":   {"C3"},
		"diagonal": {"A1", "C3", "E5"},
		"corners":  {"A1", "A5", "E1", "E5"},
		"row":      {"B3", "C3", "D3"},
	}
}

// With returns a copy of k with name set to labels. The labels are validated.
func (k Catalog) With(name string, labels []string) (Catalog, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	for _, l := range labels {
		if _, err := ParseCell(l); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
		}
	}
	out := maps.Clone(k)
	if out == nil {
		out = Catalog{}
	}
	out[name] = slices.Clone(labels)
	return out, nil
}

// Names returns the preset names in sorted order.
func (k Catalog) Names() []string {
	return slices.Sorted(maps.Keys(k))
}

// Has reports whether name is in the catalog.
func (k Catalog) Has(name string) bool {
	_, ok := k[name]
	return ok
}

// Blocks returns the block positions (cell centers) of the named preset.
func (k Catalog) Blocks(name string) ([]Point, error) {
	labels, ok := k[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q (available: %v)", name, k.Names())
	}
	return CenterOf(labels...)
}
