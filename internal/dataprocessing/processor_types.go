package dataprocessing

import (
	"peilbuis/internal/config"
)

// ParseOptions configures the delimited text layout
type ParseOptions struct {
	// Delimiter separates the fields of a line
	Delimiter rune

	// Encoding is config.EncodingUTF16 or config.EncodingUTF8
	Encoding string

	// SkipHeader drops the first line of the file
	SkipHeader bool
}

// DefaultOptions returns the layout written by the survey controller
func DefaultOptions() ParseOptions {
	return ParseOptions{
		Delimiter:  ';',
		Encoding:   config.EncodingUTF16,
		SkipHeader: true,
	}
}

// OptionsFromConfig converts the input configuration
func OptionsFromConfig(cfg config.InputConfig) ParseOptions {
	opts := DefaultOptions()
	for _, r := range cfg.Delimiter {
		opts.Delimiter = r
		break
	}
	if cfg.Encoding != "" {
		opts.Encoding = cfg.Encoding
	}
	opts.SkipHeader = cfg.SkipHeader
	return opts
}

// sourceRow is one row of a survey file before conversion
type sourceRow struct {
	line   int
	fields []string
}

// rawReading holds the text of one row, field by field
type rawReading struct {
	FID      string `csv:"FID"`
	VID      string `csv:"VID"`
	X        string `csv:"X" validate:"required"`
	Y        string `csv:"Y" validate:"required"`
	Z        string `csv:"Z" validate:"required"`
	Accuracy string `csv:"accuracy" validate:"required"`
	WellID   string `csv:"well_id" validate:"required"`
}
