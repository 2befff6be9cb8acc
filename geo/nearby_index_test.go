package geo

import (
	"testing"

	"bucket-list-client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func austinEntries() []Entry {
	return []Entry{
		{ID: "franklin", Location: franklinBBQ},
		{ID: "uchi", Location: models.Coordinates{Latitude: 30.2577, Longitude: -97.7613}},
		{ID: "veracruz", Location: models.Coordinates{Latitude: 30.2562, Longitude: -97.7241}},
		{ID: "houston", Location: models.Coordinates{Latitude: 29.7604, Longitude: -95.3698}},
	}
}

func TestNearbyIndex_Within(t *testing.T) {
	idx := NewNearbyIndex()
	idx.Reset(austinEntries())

	matches, err := idx.Within(austinCapitol, 5000)

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "franklin", matches[0].ID, "nearest first")
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].DistanceMeters, matches[i].DistanceMeters)
	}
	for _, m := range matches {
		assert.NotEqual(t, "houston", m.ID)
	}
}

func TestNearbyIndex_WithinTightRadius(t *testing.T) {
	idx := NewNearbyIndex()
	idx.Reset(austinEntries())

	matches, err := idx.Within(austinCapitol, 1500)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "franklin", matches[0].ID)
}

func TestNearbyIndex_InvalidRadius(t *testing.T) {
	_, err := NewNearbyIndex().Within(austinCapitol, 0)
	assert.Error(t, err)
}

func TestNearbyIndex_ResetReplaces(t *testing.T) {
	idx := NewNearbyIndex()
	idx.Reset(austinEntries())
	require.Equal(t, 4, idx.Size())

	idx.Reset(nil)

	assert.Equal(t, 0, idx.Size())
	matches, err := idx.Within(austinCapitol, 1e6)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestNearbyIndex_Nearest(t *testing.T) {
	idx := NewNearbyIndex()
	idx.Reset(austinEntries())

	matches := idx.Nearest(austinCapitol, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "franklin", matches[0].ID)
	assert.Empty(t, idx.Nearest(austinCapitol, 0))
}
