package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peilbuis/pkg/contracts/domain"
)

func reading(wellID string, x, y, z, accuracy float64) domain.Reading {
	return domain.Reading{WellID: wellID, X: x, Y: y, Z: z, Accuracy: accuracy}
}

func TestIsAccurate(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     bool
	}{
		{"well below threshold", 0.005, true},
		{"zero", 0, true},
		{"exactly at threshold", 0.02, true},
		{"just above threshold", 0.0200001, false},
		{"far above threshold", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAccurate(reading("P1", 0, 0, 0, tt.accuracy)))
		})
	}
}

func TestFilterAccuracy(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		accepted, rejected, notices := FilterAccuracy(nil)
		assert.Empty(t, accepted)
		assert.Empty(t, rejected)
		assert.Empty(t, notices)
	})

	t.Run("counts are per well", func(t *testing.T) {
		readings := []domain.Reading{
			reading("P1", 1, 1, 1, 0.01),
			reading("P1", 1, 1, 1, 0.03),
			reading("P2", 1, 1, 1, 0.04),
			reading("P1", 1, 1, 1, 0.05),
			reading("P2", 1, 1, 1, 0.02),
			reading("P3", 1, 1, 1, 0.01),
		}

		accepted, rejected, notices := FilterAccuracy(readings)
		assert.Len(t, accepted, 3)
		assert.Len(t, rejected, 3)

		require.Len(t, notices, 2)
		assert.Equal(t, domain.Notice{
			WellID: "P1",
			Kind:   domain.NoticeAccuracy,
			Text:   "accuracy exceeds 0.02, value filtered. Total: 2 values",
		}, notices[0])
		assert.Equal(t, domain.Notice{
			WellID: "P2",
			Kind:   domain.NoticeAccuracy,
			Text:   "accuracy exceeds 0.02, value filtered. Total: 1 values",
		}, notices[1])
	})

	t.Run("no notice when nothing rejected", func(t *testing.T) {
		_, rejected, notices := FilterAccuracy([]domain.Reading{reading("P1", 0, 0, 0, 0.02)})
		assert.Empty(t, rejected)
		assert.Empty(t, notices)
	})
}

func TestComputeCentroids(t *testing.T) {
	readings := []domain.Reading{
		reading("P1", 1, 2, 3, 0.01),
		reading("P1", 3, 4, 5, 0.01),
		reading("P2", 10, 20, 30, 0.01),
	}

	centroids := ComputeCentroids(readings)
	require.Len(t, centroids, 2)
	assert.Equal(t, Centroid{X: 2, Y: 3, Z: 4, Count: 2}, centroids["P1"])
	assert.Equal(t, Centroid{X: 10, Y: 20, Z: 30, Count: 1}, centroids["P2"])

	assert.Empty(t, ComputeCentroids(nil))
}
