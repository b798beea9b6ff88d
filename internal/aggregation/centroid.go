package aggregation

import (
	"peilbuis/pkg/contracts/domain"
)

// Centroid is the mean position of the readings of one well.
type Centroid struct {
	X, Y, Z float64
	// Count is the number of readings the mean was computed from
	Count int
}

type accumulator struct {
	sumX, sumY, sumZ float64
	n                int
}

func (a *accumulator) add(r domain.Reading) {
	a.sumX += r.X
	a.sumY += r.Y
	a.sumZ += r.Z
	a.n++
}

func (a accumulator) centroid() Centroid {
	n := float64(a.n)
	return Centroid{
		X:     a.sumX / n,
		Y:     a.sumY / n,
		Z:     a.sumZ / n,
		Count: a.n,
	}
}

// ComputeCentroids returns the per-well mean of the given readings.
// Wells without readings have no entry.
func ComputeCentroids(readings []domain.Reading) map[string]Centroid {
	return centroidsWhere(readings, func(int, domain.Reading) bool { return true })
}

func centroidsWhere(readings []domain.Reading, keep func(i int, r domain.Reading) bool) map[string]Centroid {
	acc := make(map[string]*accumulator)
	for i, r := range readings {
		if !keep(i, r) {
			continue
		}
		a, ok := acc[r.WellID]
		if !ok {
			a = &accumulator{}
			acc[r.WellID] = a
		}
		a.add(r)
	}

	centroids := make(map[string]Centroid, len(acc))
	for wellID, a := range acc {
		centroids[wellID] = a.centroid()
	}
	return centroids
}
