package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/sweeper/internal/mines"
)

// LoadPresets reads a difficulty table from a YAML file of the form
//
//	Easy: {grid_size: 10, mine_count: 10}
//
// An empty path yields [mines.DefaultPresets].
func LoadPresets(path string) (mines.Presets, error) {
	if path == "" {
		return mines.DefaultPresets(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read presets file: %w", err)
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) (mines.Presets, error) {
	var presets mines.Presets
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&presets); err != nil {
		return nil, fmt.Errorf("unable to parse presets: %w", err)
	}
	if err := presets.Validate(); err != nil {
		return nil, err
	}
	return presets, nil
}
