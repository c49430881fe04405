package utils

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLogLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line), scanner.Text())
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger(AppConfig{Name: "filmes-test", LogPath: dir})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Filme created", zap.Uint("filme_id", 7))

	lines := readLogLines(t, filepath.Join(dir, "filmes-test.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, "Filme created", lines[0]["message"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "filmes-test", lines[0]["app"])
	assert.EqualValues(t, 7, lines[0]["filme_id"])
	assert.Contains(t, lines[0], "timestamp")
	assert.Contains(t, lines[0]["caller"], "logger_test.go")
}

func TestInitLogger_DebugKeepsFileAsJSON(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(AppConfig{LogPath: dir, Debug: true})
	require.NoError(t, err)

	logger.Debug("cache miss")
	logger.Error("store down")

	lines := readLogLines(t, filepath.Join(dir, "filmes-api.log"))
	require.Len(t, lines, 2)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.NotContains(t, lines[0], "stacktrace")
	assert.Contains(t, lines[1], "stacktrace")
}

func TestInitLogger_WithoutLogPath(t *testing.T) {
	logger, err := InitLogger(AppConfig{Name: "filmes-test"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestInitLogger_UnwritableLogPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := InitLogger(AppConfig{LogPath: filepath.Join(file, "logs")})
	assert.Error(t, err)
}
