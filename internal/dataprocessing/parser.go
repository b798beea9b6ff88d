package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"peilbuis/internal/config"
	apperrors "peilbuis/internal/errors"
	"peilbuis/pkg/contracts/domain"
)

var errNonFinite = errors.New("value is not a finite number")

// Parser converts survey files into readings
type Parser struct {
	opts     ParseOptions
	validate *validator.Validate
	logger   *slog.Logger
}

// NewParser creates a parser for the given layout
func NewParser(opts ParseOptions, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	// Use the survey column names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("csv"), ",", 2)[0]
	})

	return &Parser{
		opts:     opts,
		validate: v,
		logger:   logger.With(slog.String("component", "parser")),
	}
}

// ParseFile reads a survey file. Workbooks are recognised by their .xlsx
// extension, anything else is read as delimited text.
func (p *Parser) ParseFile(filePath string) ([]domain.Reading, error) {
	var (
		readings []domain.Reading
		err      error
	)

	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		readings, err = p.parseWorkbook(filePath)
	} else {
		var f *os.File
		f, err = os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		readings, err = p.ParseText(f)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info("Survey file parsed",
		slog.String("file", filepath.Base(filePath)),
		slog.Int("readings", len(readings)))
	return readings, nil
}

// ParseText reads delimited survey text from r
func (p *Parser) ParseText(r io.Reader) ([]domain.Reading, error) {
	dec, err := p.decoder()
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, dec))
	reader.Comma = p.opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var rows []sourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read survey text", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, sourceRow{line: line, fields: record})
	}

	return p.convertRows(rows)
}

// parseWorkbook reads the first sheet of an Excel workbook
func (p *Parser) parseWorkbook(filePath string) ([]domain.Reading, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	// Display formats must not round coordinates or accuracy
	cells, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet "+sheets[0], err)
	}

	p.logger.Debug("Reading survey workbook",
		slog.String("sheet", sheets[0]),
		slog.Int("rows", len(cells)))

	rows := make([]sourceRow, 0, len(cells))
	for i, fields := range cells {
		rows = append(rows, sourceRow{line: i + 1, fields: fields})
	}
	return p.convertRows(rows)
}

func (p *Parser) decoder() (transform.Transformer, error) {
	var enc encoding.Encoding
	switch strings.ToLower(p.opts.Encoding) {
	case config.EncodingUTF16:
		// Survey controllers write little endian, a BOM takes precedence
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case config.EncodingUTF8, "":
		enc = unicode.UTF8BOM
	default:
		return nil, apperrors.NewConfigError("unsupported encoding "+p.opts.Encoding, nil)
	}
	return enc.NewDecoder(), nil
}

func (p *Parser) convertRows(rows []sourceRow) ([]domain.Reading, error) {
	if p.opts.SkipHeader && len(rows) > 0 {
		header := rows[0]
		rows = rows[1:]
		if n := len(header.fields); n < len(domain.ReadingColumns) {
			return nil, apperrors.NewMissingColumnError(domain.ReadingColumns[n], header.line)
		}
	}

	readings := make([]domain.Reading, 0, len(rows))
	for _, row := range rows {
		if isBlank(row.fields) {
			continue
		}
		reading, err := p.convertRow(row)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	return readings, nil
}

func (p *Parser) convertRow(row sourceRow) (domain.Reading, error) {
	raw := rawReading{
		FID:      field(row.fields, 0),
		VID:      field(row.fields, 1),
		X:        field(row.fields, 2),
		Y:        field(row.fields, 3),
		Z:        field(row.fields, 4),
		Accuracy: field(row.fields, 5),
		WellID:   field(row.fields, 6),
	}

	if err := p.validate.Struct(raw); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domain.Reading{}, apperrors.NewMissingColumnError(fieldErrs[0].Field(), row.line)
		}
		return domain.Reading{}, err
	}

	reading := domain.Reading{
		ID:        raw.FID,
		VehicleID: raw.VID,
		WellID:    raw.WellID,
	}

	numbers := []struct {
		column string
		value  string
		target *float64
	}{
		{"X", raw.X, &reading.X},
		{"Y", raw.Y, &reading.Y},
		{"Z", raw.Z, &reading.Z},
		{"accuracy", raw.Accuracy, &reading.Accuracy},
	}
	for _, n := range numbers {
		v, err := parseFloat(n.value)
		if err != nil {
			return domain.Reading{}, &apperrors.ParseError{
				Column: n.column,
				Line:   row.line,
				Value:  n.value,
				Cause:  err,
			}
		}
		*n.target = v
	}

	return reading, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNonFinite
	}
	return v, nil
}

// field returns the trimmed field at i, or "" when the row is too short
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
