package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"peilbuis/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger.With(slog.String("component", "csv_writer"))}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
	Delimiter rune // Defaults to ','
}

// Write exports the well table with a BOM prefix
func (w *CSVWriter) Write(path string, wells []domain.WellAggregate) error {
	return w.WriteCSV(path, WriteOptions{
		Headers:   domain.ResultHeaders,
		Records:   tableRecords(wells),
		BOMPrefix: true,
	})
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := ensureDir(filePath); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := writeRecords(file, options); err != nil {
		file.Close()
		if rmErr := os.Remove(filePath); rmErr != nil {
			w.logger.Warn("Failed to remove partial CSV file",
				slog.String("file_path", filePath),
				slog.String("error", rmErr.Error()))
		}
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(filePath)
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

func writeRecords(out io.Writer, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if options.Delimiter != 0 {
		writer.Comma = options.Delimiter
	}

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
