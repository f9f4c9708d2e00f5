package mines

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

type Preset struct {
	GridSize  int `yaml:"grid_size"`
	MineCount int `yaml:"mine_count"`
}

func (p Preset) Validate() error {
	return validateParams(p.GridSize, p.MineCount)
}

func (p Preset) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.GridSize, p.GridSize, p.MineCount)
}

// Presets maps a difficulty name to its board parameters.
type Presets map[string]Preset

func DefaultPresets() Presets {
	return Presets{
		"Easy":   {GridSize: 10, MineCount: 10},
		"Medium": {GridSize: 15, MineCount: 30},
		"Hard":   {GridSize: 20, MineCount: 75},
		"Expert": {GridSize: 25, MineCount: 110},
	}
}

func (p Presets) Lookup(name string) (Preset, error) {
	preset, ok := p[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return preset, nil
}

// Names returns the difficulty names from the smallest board to the largest.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		pa, pb := p[a], p[b]
		return cmp.Or(
			cmp.Compare(pa.GridSize, pb.GridSize),
			cmp.Compare(pa.MineCount, pb.MineCount),
			cmp.Compare(a, b),
		)
	})
	return names
}

func (p Presets) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no difficulty presets", ErrInvalidConfiguration)
	}
	var errs []error
	for _, name := range p.Names() {
		if err := p[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
