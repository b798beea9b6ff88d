package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peilbuis/pkg/contracts/domain"
)

func float(v float64) *float64 {
	return &v
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		input    *float64
		expected string
	}{
		{"missing value", nil, ""},
		{"zero", float(0), "0.000"},
		{"integer", float(463000), "463000.000"},
		{"three decimals", float(155000.123), "155000.123"},
		{"negative", float(-1.235), "-1.235"},
		{"one decimal", float(1.5), "1.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCoordinate(tt.input))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.02", formatFloat(0.02))
	assert.Equal(t, "1", formatFloat(1))
	assert.Equal(t, "-0.5", formatFloat(-0.5))
}

func TestTableRecords(t *testing.T) {
	wells := []domain.WellAggregate{
		{WellID: "PB01", X: float(1.5), Y: float(2), Z: float(-0.25), Accuracy: 0.02},
		{WellID: "PB02", Accuracy: 0.02, Message: "no values within accuracy limit, no average computed"},
	}

	assert.Equal(t, [][]string{
		{"PB01", "1.500", "2.000", "-0.250", "0.02", ""},
		{"PB02", "", "", "", "0.02", "no values within accuracy limit, no average computed"},
	}, tableRecords(wells))

	assert.Empty(t, tableRecords(nil))
}
