package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peilbuis/pkg/contracts/domain"
)

func TestRoundCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"rounds up", 1.23456, 1.235},
		{"tie goes away from zero", 1.2345, 1.235},
		{"negative tie goes away from zero", -1.2345, -1.235},
		{"below tie rounds down", 1.2344999, 1.234},
		{"tie on even digit", 2.0005, 2.001},
		{"already short", 2.5, 2.5},
		{"integer", 7, 7},
		{"small value", 0.0005, 0.001},
		{"rounds to zero", -0.0004, 0},
		{"carry into integer part", 9.9995, 10},
		{"rd coordinate", 155000.1235, 155000.124},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundCoordinate(tt.value))
		})
	}
}

func TestSortWells(t *testing.T) {
	wells := []domain.WellAggregate{
		{WellID: "B-mv"},
		{WellID: "A"},
		{WellID: "C-mv"},
		{WellID: "B"},
	}

	SortWells(wells)

	var ids []string
	for _, w := range wells {
		ids = append(ids, w.WellID)
	}
	assert.Equal(t, []string{"A", "B", "B-mv", "C-mv"}, ids)
}

func TestIsMV(t *testing.T) {
	assert.True(t, IsMV("PB12-mv"))
	assert.False(t, IsMV("PB12"))
	assert.False(t, IsMV("mv-PB12"))
	assert.False(t, IsMV("PB12-MV"))
}

func TestBuildResults(t *testing.T) {
	centroids := map[string]Centroid{
		"P2": {X: 1.23456, Y: 2, Z: -0.5, Count: 3},
		"P1": {X: 10, Y: 20, Z: 30, Count: 1},
	}
	messages := map[string]string{"P3": "no values within accuracy limit, no average computed"}

	wells := BuildResults([]string{"P2", "P3", "P1"}, centroids, messages)

	require.Len(t, wells, 3)
	assert.Equal(t, "P1", wells[0].WellID)
	assert.Equal(t, "", wells[0].Message)
	assert.Equal(t, AccuracyThreshold, wells[0].Accuracy)

	assert.Equal(t, "P2", wells[1].WellID)
	require.True(t, wells[1].HasCentroid())
	assert.Equal(t, 1.235, *wells[1].X)
	assert.Equal(t, 2.0, *wells[1].Y)
	assert.Equal(t, -0.5, *wells[1].Z)

	assert.Equal(t, "P3", wells[2].WellID)
	assert.False(t, wells[2].HasCentroid())
	assert.Nil(t, wells[2].X)
	assert.Equal(t, messages["P3"], wells[2].Message)
}

func TestAnnotate(t *testing.T) {
	notices := []domain.Notice{
		{WellID: "P1", Kind: domain.NoticeAccuracy, Text: "first"},
		{WellID: "P2", Kind: domain.NoticeDeviation, Text: "other"},
		{WellID: "P1", Kind: domain.NoticeDeviation, Text: "second"},
		{WellID: "P1", Kind: domain.NoticeDeviation, Text: "first"},
		{WellID: "P3", Kind: domain.NoticeDeviation, Text: ""},
	}

	messages := Annotate(notices)

	assert.Equal(t, map[string]string{
		"P1": "first, second",
		"P2": "other",
	}, messages)
	assert.Empty(t, Annotate(nil))
}
