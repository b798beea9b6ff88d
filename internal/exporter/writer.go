package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"peilbuis/internal/config"
	"peilbuis/pkg/contracts/domain"
)

// Writer persists the result table
type Writer interface {
	Write(path string, wells []domain.WellAggregate) error
}

// New returns the writer for the configured output format
func New(cfg config.OutputConfig, logger *slog.Logger) (Writer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Format {
	case config.FormatXLSX, "":
		return NewXLSXWriter(cfg.SheetName, logger), nil
	case config.FormatCSV:
		return NewCSVWriter(logger), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", cfg.Format)
	}
}

// ensureDir creates the directory that will hold path
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
