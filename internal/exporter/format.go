package exporter

import (
	"strconv"

	"peilbuis/pkg/contracts/domain"
)

// coordinateDecimals is the number of decimals shown for coordinates
const coordinateDecimals = 3

// formatCoordinate formats a coordinate with exactly 3 decimals, or "" when
// the well has no centroid
func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', coordinateDecimals, 64)
}

// formatFloat formats a value using the fewest digits that represent it
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// tableRecords converts wells into text rows in ResultHeaders order
func tableRecords(wells []domain.WellAggregate) [][]string {
	records := make([][]string, 0, len(wells))
	for _, w := range wells {
		records = append(records, []string{
			w.WellID,
			formatCoordinate(w.X),
			formatCoordinate(w.Y),
			formatCoordinate(w.Z),
			formatFloat(w.Accuracy),
			w.Message,
		})
	}
	return records
}
