package aggregation

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"peilbuis/pkg/contracts/domain"
)

// BuildResults merges centroids and messages into one row per well and sorts
// the rows. Wells missing from centroids get nil coordinates, wells missing
// from messages get an empty message.
func BuildResults(wellIDs []string, centroids map[string]Centroid, messages map[string]string) []domain.WellAggregate {
	wells := make([]domain.WellAggregate, 0, len(wellIDs))
	for _, wellID := range wellIDs {
		w := domain.WellAggregate{
			WellID:   wellID,
			Accuracy: AccuracyThreshold,
			Message:  messages[wellID],
		}
		if c, ok := centroids[wellID]; ok {
			w.X = roundedPtr(c.X)
			w.Y = roundedPtr(c.Y)
			w.Z = roundedPtr(c.Z)
		}
		wells = append(wells, w)
	}

	SortWells(wells)
	return wells
}

// SortWells orders wells by well id with "-mv" wells after all others.
func SortWells(wells []domain.WellAggregate) {
	sort.Slice(wells, func(i, j int) bool {
		return wellLess(wells[i].WellID, wells[j].WellID)
	})
}

func wellLess(a, b string) bool {
	aMV, bMV := IsMV(a), IsMV(b)
	if aMV != bMV {
		return bMV
	}
	return a < b
}

// IsMV reports whether the well id carries the "-mv" marker.
func IsMV(wellID string) bool {
	return strings.HasSuffix(wellID, MVSuffix)
}

func roundedPtr(v float64) *float64 {
	r := RoundCoordinate(v)
	return &r
}

// RoundCoordinate rounds v to three decimals, half away from zero.
// Rounding works on the shortest decimal form of v, so 1.2345 becomes 1.235
// even though its binary value is slightly below the tie.
func RoundCoordinate(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= coordinateDecimals {
		return v
	}

	scaled, err := strconv.ParseInt(intPart+frac[:coordinateDecimals], 10, 64)
	if err != nil || scaled >= 1<<53 {
		return math.Round(v*1e3) / 1e3
	}
	if frac[coordinateDecimals] >= '5' {
		scaled++
	}
	if scaled == 0 {
		return 0
	}

	r := float64(scaled) / 1e3
	if v < 0 {
		r = -r
	}
	return r
}
