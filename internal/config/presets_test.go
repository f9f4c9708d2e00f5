package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func TestLoadPresetsDefault(t *testing.T) {
	presets, err := LoadPresets("")
	require.NoError(t, err)
	assert.Equal(t, mines.DefaultPresets(), presets)
}

func TestLoadPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := "Tiny: {grid_size: 2, mine_count: 1}\n" +
		"Easy:\n  grid_size: 10\n  mine_count: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, mines.Presets{
		"Tiny": {GridSize: 2, MineCount: 1},
		"Easy": {GridSize: 10, MineCount: 10},
	}, presets)
	assert.Equal(t, []string{"Tiny", "Easy"}, presets.Names())
}

func TestLoadPresetsMissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePresetsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"full grid", "Full: {grid_size: 3, mine_count: 9}"},
		{"unknown field", "Easy: {grid_size: 3, mines: 1}"},
		{"not a map", "- Easy"},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(test.data))
			assert.Error(t, err)
		})
	}
}

func TestParsePresetsBadValues(t *testing.T) {
	_, err := ParsePresets([]byte("Full: {grid_size: 3, mine_count: 9}"))
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())

	t.Setenv("MINES_LOG_FILE", "")
	assert.Equal(t, defaultLogFile, LogFile())
	t.Setenv("MINES_LOG_FILE", "/tmp/x.log")
	assert.Equal(t, "/tmp/x.log", LogFile())

	t.Setenv("MINES_PRESETS_FILE", "p.yaml")
	assert.Equal(t, "p.yaml", PresetsFile())
}
