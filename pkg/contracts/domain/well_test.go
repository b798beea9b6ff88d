package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWellAggregate_HasCentroid(t *testing.T) {
	v := 1.0

	assert.True(t, WellAggregate{WellID: "PB01", X: &v, Y: &v, Z: &v}.HasCentroid())
	assert.False(t, WellAggregate{WellID: "PB01"}.HasCentroid())
	assert.False(t, WellAggregate{WellID: "PB01", X: &v, Y: &v}.HasCentroid())
}

func TestResultHeaders(t *testing.T) {
	assert.Equal(t, []string{"putnummer", "X", "Y", "Z", "Nauwkeurigheid", "Melding"}, ResultHeaders)
	assert.Len(t, ReadingColumns, 7)
}
