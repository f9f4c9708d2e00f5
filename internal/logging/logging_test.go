package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", slog.Int("row", 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, float64(3), rec["row"])
}

func TestNewConsoleDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, true)
	logger.Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestFromLogrus(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)
	logger := FromLogrus(log).With(slog.String("game_id", "g1")).WithGroup("cell")

	logger.Debug("dropped")
	logger.Warn("flagged", slog.Int("row", 1), slog.Group("pos", slog.Int("col", 2)))

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "flagged", entry.Message)
	assert.Equal(t, "g1", entry.Data["game_id"])
	assert.Equal(t, int64(1), entry.Data["cell.row"])
	assert.Equal(t, int64(2), entry.Data["cell.pos.col"])
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := NewFile(FileOptions{Path: path})
	require.NoError(t, err)

	log.WithField("difficulty", "Easy").Info("new game")
	log.Debug("not at info level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "new game", rec["msg"])
	assert.Equal(t, "Easy", rec["difficulty"])
}
