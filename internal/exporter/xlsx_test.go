package exporter

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"peilbuis/internal/config"
	"peilbuis/pkg/contracts/domain"
)

func readWorkbook(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheet}, f.GetSheetList())

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return rows
}

func parseCell(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}

func TestXLSXWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metingen_resultaten.xlsx")
	writer := NewXLSXWriter("Resultaten", nil)

	wells := []domain.WellAggregate{
		{WellID: "PB01", X: float(155000.123), Y: float(463000.456), Z: float(-1.235), Accuracy: 0.02,
			Message: "accuracy exceeds 0.02, value filtered. Total: 2 values"},
		{WellID: "PB02", X: float(1), Y: float(2), Z: float(3), Accuracy: 0.02},
		{WellID: "PB03-mv", Accuracy: 0.02, Message: "no values within accuracy limit, no average computed"},
	}

	require.NoError(t, writer.Write(path, wells))

	rows := readWorkbook(t, path, "Resultaten")
	require.Len(t, rows, 4)
	assert.Equal(t, domain.ResultHeaders, rows[0])

	assert.Equal(t, "PB01", rows[1][0])
	assert.Equal(t, 155000.123, parseCell(t, rows[1][1]))
	assert.Equal(t, 463000.456, parseCell(t, rows[1][2]))
	assert.Equal(t, -1.235, parseCell(t, rows[1][3]))
	assert.Equal(t, 0.02, parseCell(t, rows[1][4]))
	assert.Equal(t, "accuracy exceeds 0.02, value filtered. Total: 2 values", rows[1][5])

	// no message, trailing empty cell is trimmed
	require.Len(t, rows[2], 5)
	assert.Equal(t, 1.0, parseCell(t, rows[2][1]))

	require.Len(t, rows[3], 6)
	assert.Equal(t, []string{"PB03-mv", "", "", ""}, rows[3][:4])
	assert.Equal(t, "no values within accuracy limit, no average computed", rows[3][5])
}

func TestXLSXWriter_NumericCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, NewXLSXWriter("", nil).Write(path, []domain.WellAggregate{
		{WellID: "PB01", X: float(10.5), Y: float(20.25), Z: float(0.125), Accuracy: 0.02},
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	raw, err := f.GetCellValue(config.DefaultSheetName, "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "10.5", raw)

	// shown with three decimals
	shown, err := f.GetCellValue(config.DefaultSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "10.500", shown)
}

func TestXLSXWriter_EmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leeg.xlsx")

	require.NoError(t, NewXLSXWriter("Resultaten", nil).Write(path, nil))

	rows := readWorkbook(t, path, "Resultaten")
	require.Len(t, rows, 1)
	assert.Equal(t, domain.ResultHeaders, rows[0])
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    interface{}
		wantErr bool
	}{
		{"xlsx", "xlsx", &XLSXWriter{}, false},
		{"default", "", &XLSXWriter{}, false},
		{"csv", "csv", &CSVWriter{}, false},
		{"unknown", "ods", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(config.OutputConfig{Format: tt.format, SheetName: "Resultaten"}, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, w)
		})
	}
}
