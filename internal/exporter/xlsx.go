package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"peilbuis/internal/config"
	"peilbuis/pkg/contracts/domain"
)

// columnWidths per result column, in characters
var columnWidths = []float64{16, 14, 14, 10, 16, 80}

// XLSXWriter exports the well table as an Excel workbook
type XLSXWriter struct {
	sheetName string
	logger    *slog.Logger
}

// NewXLSXWriter creates a writer producing a single sheet named sheetName
func NewXLSXWriter(sheetName string, logger *slog.Logger) *XLSXWriter {
	if sheetName == "" {
		sheetName = config.DefaultSheetName
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{
		sheetName: sheetName,
		logger:    logger.With(slog.String("component", "xlsx_writer")),
	}
}

// Write creates or replaces the workbook at path
func (w *XLSXWriter) Write(path string, wells []domain.WellAggregate) error {
	w.logger.Info("Writing result workbook",
		slog.String("file_path", path),
		slog.String("sheet", w.sheetName),
		slog.Int("record_count", len(wells)))

	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.Warn("Failed to close workbook", slog.String("error", err.Error()))
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), w.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := w.writeHeader(f); err != nil {
		return err
	}

	coordStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: stringPtr("0.000")})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, well := range wells {
		if err := w.writeWell(f, i+2, well, coordStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) writeHeader(f *excelize.File) error {
	header := make([]interface{}, len(domain.ResultHeaders))
	for i, h := range domain.ResultHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(w.sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(domain.ResultHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(w.sheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(w.sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func (w *XLSXWriter) writeWell(f *excelize.File, row int, well domain.WellAggregate, coordStyle int) error {
	cell := func(col int) string {
		name, _ := excelize.CoordinatesToCellName(col, row)
		return name
	}

	if err := f.SetCellStr(w.sheetName, cell(1), well.WellID); err != nil {
		return fmt.Errorf("failed to write well %s: %w", well.WellID, err)
	}

	for i, v := range []*float64{well.X, well.Y, well.Z} {
		if v == nil {
			continue
		}
		if err := f.SetCellFloat(w.sheetName, cell(i+2), *v, -1, 64); err != nil {
			return fmt.Errorf("failed to write well %s: %w", well.WellID, err)
		}
	}
	if err := f.SetCellStyle(w.sheetName, cell(2), cell(4), coordStyle); err != nil {
		return fmt.Errorf("failed to style well %s: %w", well.WellID, err)
	}

	if err := f.SetCellFloat(w.sheetName, cell(5), well.Accuracy, -1, 64); err != nil {
		return fmt.Errorf("failed to write well %s: %w", well.WellID, err)
	}
	if well.Message != "" {
		if err := f.SetCellStr(w.sheetName, cell(6), well.Message); err != nil {
			return fmt.Errorf("failed to write well %s: %w", well.WellID, err)
		}
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}
