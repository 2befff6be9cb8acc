package di

import (
	"context"
	"testing"
	"time"

	"bucket-list-client/config"
	"bucket-list-client/models"
	services "bucket-list-client/service"
	"bucket-list-client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("PROJECT_ROOT", "..")
	return &config.Config{
		AppEnv:                "development",
		PlacesBaseURL:         config.PLACES_API_ENDPOINT_BASE_V3,
		PlacesAPIKey:          "test-key",
		PlacesMode:            config.PLACES_MODE_FIXTURE,
		StorageBackend:        config.STORAGE_BACKEND_MEMORY,
		HTTPAddr:              ":0",
		LogLevel:              "error",
		LogFormat:             "console",
		DeviceLat:             30.2672,
		DeviceLng:             -97.7431,
		DeviceLocationAllowed: true,
		LocationWatchCeiling:  30 * time.Minute,
		UserID:                config.MOCK_USER_ID,
	}
}

func TestNewContainer_FixtureAndMemory(t *testing.T) {
	cfg := fixtureConfig(t)

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	// location from the configured device, then venues from the fixture
	require.NoError(t, c.Coordinator.GetUserLocation().Wait())
	loc, ok := store.SelectUserLocation(c.Store.State())
	require.True(t, ok)
	assert.Equal(t, models.Coordinates{Latitude: 30.2672, Longitude: -97.7431}, loc)

	require.NoError(t, c.Coordinator.FetchNearbyVenues(services.VenueRequest{}).Wait())
	assert.NotEmpty(t, c.Store.State().Venues.Nearby.Venues)

	// saved items land in the in-memory backend
	venueID := c.Store.State().Venues.Nearby.Venues[0].ID
	require.NoError(t, c.Coordinator.AddToBucketList(services.AddInput{VenueID: venueID}).Wait())
	items, err := c.BucketListDao.GetBucketList(context.Background(), config.MOCK_USER_ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, venueID, items[0].ID)
}

func TestNewContainer_MissingFixtures(t *testing.T) {
	cfg := fixtureConfig(t)
	t.Setenv("PROJECT_ROOT", t.TempDir())

	_, err := NewContainer(context.Background(), cfg)

	assert.Error(t, err)
}

func TestNewContainer_InvalidLogLevel(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.LogLevel = "loud"

	_, err := NewContainer(context.Background(), cfg)

	assert.Error(t, err)
}
