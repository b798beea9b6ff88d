package aggregation

import (
	"math"

	"peilbuis/pkg/contracts/domain"
)

// Deviation is the absolute distance of a reading from its well centroid per axis.
type Deviation struct {
	DX, DY, DZ float64
}

// DeviationFrom computes the deviation of r from c.
func DeviationFrom(r domain.Reading, c Centroid) Deviation {
	return Deviation{
		DX: math.Abs(r.X - c.X),
		DY: math.Abs(r.Y - c.Y),
		DZ: math.Abs(r.Z - c.Z),
	}
}

// Exceeds reports whether any axis is beyond its limit. Limits are exclusive.
func (d Deviation) Exceeds() bool {
	return d.DX > MaxDeviationX || d.DY > MaxDeviationY || d.DZ > MaxDeviationZ
}

// FilterDeviation flags the outliers among readings. The returned slice is
// parallel to readings. Every reading is checked, whether or not it passed the
// quality filter; readings of wells without a centroid are never outliers.
func FilterDeviation(readings []domain.Reading, centroids map[string]Centroid) (outliers []bool, notices []domain.Notice) {
	outliers = make([]bool, len(readings))
	counts := make(map[string]int)
	var order []string

	for i, r := range readings {
		c, ok := centroids[r.WellID]
		if !ok {
			continue
		}
		if !DeviationFrom(r, c).Exceeds() {
			continue
		}
		outliers[i] = true
		if counts[r.WellID] == 0 {
			order = append(order, r.WellID)
		}
		counts[r.WellID]++
	}

	for _, wellID := range order {
		notices = append(notices, domain.Notice{
			WellID: wellID,
			Kind:   domain.NoticeDeviation,
			Text:   deviationNotice(counts[wellID]),
		})
	}

	return outliers, notices
}
