package geo

import (
	"testing"

	"bucket-list-client/models"

	"github.com/stretchr/testify/assert"
)

var (
	austinCapitol = models.Coordinates{Latitude: 30.2747, Longitude: -97.7404}
	franklinBBQ   = models.Coordinates{Latitude: 30.2701, Longitude: -97.7313}
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(austinCapitol, austinCapitol))
	// roughly one kilometer across downtown
	assert.InDelta(t, 1000, Distance(austinCapitol, franklinBBQ), 50)
	assert.InDelta(t, Distance(austinCapitol, franklinBBQ), Distance(franklinBBQ, austinCapitol), 1e-9)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0 m"},
		{125.4, "125 m"},
		{999.4, "999 m"},
		{1000, "1.0 km"},
		{2449, "2.4 km"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.meters))
	}
}

func TestWalkingMinutes(t *testing.T) {
	minutes := WalkingMinutes(austinCapitol, franklinBBQ)

	assert.InDelta(t, 12, minutes, 1)
	assert.Equal(t, "0 min walk", WalkingTimeString(austinCapitol, austinCapitol))
}
