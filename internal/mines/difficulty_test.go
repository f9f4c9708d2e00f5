package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()
	require.NoError(t, presets.Validate())
	assert.Equal(t, []string{"Easy", "Medium", "Hard", "Expert"}, presets.Names())

	expert, err := presets.Lookup("Expert")
	require.NoError(t, err)
	assert.Equal(t, Preset{GridSize: 25, MineCount: 110}, expert)
}

func TestPresetsLookupUnknown(t *testing.T) {
	_, err := DefaultPresets().Lookup("Nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
	assert.Contains(t, err.Error(), "Nightmare")
}

func TestPresetsNamesTieBreak(t *testing.T) {
	presets := Presets{
		"b": {GridSize: 5, MineCount: 3},
		"a": {GridSize: 5, MineCount: 3},
		"c": {GridSize: 5, MineCount: 1},
		"d": {GridSize: 2, MineCount: 1},
	}
	assert.Equal(t, []string{"d", "c", "a", "b"}, presets.Names())
}

func TestPresetsValidate(t *testing.T) {
	tests := []struct {
		name    string
		presets Presets
		valid   bool
	}{
		{name: "empty", presets: Presets{}},
		{name: "tiny", presets: Presets{"Tiny": {GridSize: 1, MineCount: 0}}, valid: true},
		{name: "full grid", presets: Presets{"Full": {GridSize: 3, MineCount: 9}}},
		{name: "zero size", presets: Presets{"Zero": {GridSize: 0, MineCount: 0}}},
		{
			name: "one bad entry",
			presets: Presets{
				"Easy": {GridSize: 10, MineCount: 10},
				"Bad":  {GridSize: 2, MineCount: 4},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.presets.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}
