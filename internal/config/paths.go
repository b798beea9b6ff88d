package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains the application paths relative to the executable
type Paths struct {
	ExecutableDir string
	LogsDir       string
	ConfigFile    string
}

// GetPaths returns the application paths relative to the executable location
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)

	return &Paths{
		ExecutableDir: exeDir,
		LogsDir:       filepath.Join(exeDir, "logs"),
		ConfigFile:    filepath.Join(exeDir, ConfigFileName),
	}, nil
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// ResultPath derives the output artifact path from the survey file path:
// "metingen.txt" becomes "metingen_resultaten.xlsx".
func ResultPath(inputPath, suffix, format string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + suffix + "." + format
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.String("executable", p.ExecutableDir),
		slog.String("logs", p.LogsDir),
		slog.String("config_file", p.ConfigFile),
		slog.Bool("config_exists", FileExists(p.ConfigFile)))
}
