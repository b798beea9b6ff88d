package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(paths.ExecutableDir))
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, ConfigFileName), paths.ConfigFile)
	assert.Equal(t, filepath.Join(paths.LogsDir, "run.log"), paths.GetLogPath("run.log"))
}

func TestResultPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		suffix string
		format string
		want   string
	}{
		{"txt to xlsx", "/data/metingen.txt", "_resultaten", "xlsx", "/data/metingen_resultaten.xlsx"},
		{"csv output", "metingen.txt", "_resultaten", "csv", "metingen_resultaten.csv"},
		{"no extension", "/data/metingen", "_out", "xlsx", "/data/metingen_out.xlsx"},
		{"dots in directory", "/data/v1.2/meting.dag1.txt", "_resultaten", "xlsx", "/data/v1.2/meting.dag1_resultaten.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultPath(tt.input, tt.suffix, tt.format))
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
}

func TestDefaultLogPath(t *testing.T) {
	path := defaultLogPath()

	assert.Equal(t, ServiceName+".log", filepath.Base(path))
	assert.Equal(t, "logs", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, path, Default().Logging.FilePath)
}
