package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"bucket-list-client/api"
	"bucket-list-client/api/places"
	"bucket-list-client/apperrors"
	"bucket-list-client/config"
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
	"bucket-list-client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var austin = models.Coordinates{Latitude: 30.2672, Longitude: -97.7431}

func ptr[T any](v T) *T { return &v }

func newTestStore() *store.Store {
	return store.New(store.InitialState(config.MOCK_USER_ID), zap.NewNop())
}

func newVenueCoordinator(t *testing.T, placesAPI places.PlacesAPI) (*Coordinator, *store.Store) {
	t.Helper()
	st := newTestStore()
	runner := NewTaskRunner(st, zap.NewNop())
	vs := NewVenueService(placesAPI, st, zap.NewNop())
	t.Cleanup(runner.Shutdown)
	return NewCoordinator(runner, vs, nil, nil, nil), st
}

func newPlacesClient(t *testing.T, srv *httptest.Server) *places.PlacesAPIClient {
	t.Helper()
	client, err := places.NewPlacesAPIClient(api.NewHTTPClient(srv.URL), "test-key")
	require.NoError(t, err)
	return client
}

func rawPlaces(names ...string) *places.RawSearchResponse {
	out := &places.RawSearchResponse{Results: []places.RawPlace{}}
	for _, n := range names {
		out.Results = append(out.Results, places.RawPlace{FsqID: n, Name: ptr(n)})
	}
	return out
}

func venueNames(venues []venue.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.Name)
	}
	return out
}

func TestFetchNearbyVenues_Austin(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places/search", r.URL.Path)
		assert.Equal(t, "30.2672,-97.7431", r.URL.Query().Get("ll"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"fsq_id":"1","name":"Test Restaurant 1"},
			{"fsq_id":"2","name":"Test Restaurant 2"}]}`))
	}))
	defer srv.Close()
	coord, st := newVenueCoordinator(t, newPlacesClient(t, srv))

	// Act
	err := coord.FetchNearbyVenues(VenueRequest{Location: &austin}).Wait()

	// Assert
	require.NoError(t, err)
	nearby := st.State().Venues.Nearby
	assert.Len(t, nearby.Venues, 2)
	assert.False(t, nearby.Loading)
	assert.Empty(t, nearby.Error)
	assert.Equal(t, []string{"Test Restaurant 1", "Test Restaurant 2"}, venueNames(nearby.Venues))
}

func TestFetchNearbyVenues_ServerErrorKeepsVenues(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()
	coord, st := newVenueCoordinator(t, newPlacesClient(t, srv))
	st.Dispatch(store.FetchVenuesSuccess{Kind: store.KindNearby, Venues: []venue.Venue{{ID: "old", Name: "Old"}}})
	before := st.State().Venues.Nearby.Venues

	// Act
	err := coord.FetchNearbyVenues(VenueRequest{Location: &austin}).Wait()

	// Assert
	var ne *apperrors.NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.StatusInternalServerError, ne.StatusCode)
	nearby := st.State().Venues.Nearby
	assert.NotEmpty(t, nearby.Error)
	assert.False(t, nearby.Loading)
	assert.Equal(t, before, nearby.Venues)
}

func TestFetchVenues_UsesStoredLocation(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	coord, st := newVenueCoordinator(t, mock)
	st.Dispatch(store.SetUserLocation{Coordinates: austin})

	require.NoError(t, coord.FetchNearbyVenues(VenueRequest{}).Wait())

	calls := mock.SearchCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, austin, calls[0].Location)
	assert.Equal(t, NEARBY_RADIUS, calls[0].Radius)
}

func TestFetchVenues_WithoutLocationFails(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	coord, st := newVenueCoordinator(t, mock)

	err := coord.FetchNearbyVenues(VenueRequest{}).Wait()

	var le *apperrors.LocationError
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, "Failed to get location: unavailable", st.State().Venues.Nearby.Error)
	assert.Zero(t, mock.CallCount())
}

func TestFetchRecommendedVenues_LatestWins(t *testing.T) {
	// Arrange
	mock := places.NewPlacesAPIClientMock()
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls atomic.Int32
	mock.SearchVenuesFunc = func(ctx context.Context, params models.VenueSearchParams) (*places.RawSearchResponse, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			// resolve after the second call, ignoring cancellation
			<-releaseFirst
			return rawPlaces("First A", "First B"), nil
		}
		return rawPlaces("Second A"), nil
	}
	coord, st := newVenueCoordinator(t, mock)

	// Act
	first := coord.FetchRecommendedVenues(VenueRequest{Location: &austin})
	<-firstStarted
	second := coord.FetchRecommendedVenues(VenueRequest{Location: &austin})
	require.NoError(t, second.Wait())
	close(releaseFirst)
	_ = first.Wait()

	// Assert
	rec := st.State().Venues.Recommended
	assert.Equal(t, []string{"Second A"}, venueNames(rec.Venues))
	assert.False(t, rec.Loading)
	assert.Empty(t, rec.Error)
}

func TestFetchRecommendedVenues_SortsByRating(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	mock.SearchVenuesFunc = func(ctx context.Context, params models.VenueSearchParams) (*places.RawSearchResponse, error) {
		return &places.RawSearchResponse{Results: []places.RawPlace{
			{FsqID: "unrated", Name: ptr("Unrated")},
			{FsqID: "good", Name: ptr("Good"), Rating: ptr(8.1)},
			{FsqID: "best", Name: ptr("Best"), Rating: ptr(9.5)},
			{FsqID: "good2", Name: ptr("Good Too"), Rating: ptr(8.1)},
		}}, nil
	}
	coord, st := newVenueCoordinator(t, mock)

	require.NoError(t, coord.FetchRecommendedVenues(VenueRequest{Location: &austin}).Wait())

	assert.Equal(t, []string{"Best", "Good", "Good Too", "Unrated"}, venueNames(st.State().Venues.Recommended.Venues))
	calls := mock.SearchCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.SortRating, calls[0].Sort)
	assert.Equal(t, models.DEFAULT_RECOMMENDED_LIMIT, calls[0].Limit)
}

func TestSearchVenues(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	mock.SearchVenuesFunc = func(ctx context.Context, params models.VenueSearchParams) (*places.RawSearchResponse, error) {
		return rawPlaces("Taco Place"), nil
	}
	coord, st := newVenueCoordinator(t, mock)

	require.NoError(t, coord.SearchVenues(VenueRequest{Location: &austin, Query: "tacos"}).Wait())

	assert.Equal(t, []string{"Taco Place"}, venueNames(st.State().Venues.Search.Venues))
	assert.Equal(t, "tacos", mock.SearchCalls()[0].Query)
	assert.Equal(t, SEARCH_RADIUS, mock.SearchCalls()[0].Radius)
}

func TestSearchVenues_RequiresQuery(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	coord, st := newVenueCoordinator(t, mock)

	err := coord.SearchVenues(VenueRequest{Location: &austin}).Wait()

	assert.Error(t, err)
	assert.Equal(t, "search query is required", st.State().Venues.Search.Error)
	assert.Zero(t, mock.CallCount())
}

func TestSelectVenue_ShortCircuitsLoadedVenues(t *testing.T) {
	// Arrange
	mock := places.NewPlacesAPIClientMock()
	coord, st := newVenueCoordinator(t, mock)
	loaded := venue.Venue{ID: "X", Name: "Loaded", Categories: []venue.Category{}, Photos: []venue.Photo{}}
	st.Dispatch(store.FetchVenuesSuccess{Kind: store.KindNearby, Venues: []venue.Venue{loaded}})

	// Act
	err := coord.SelectVenue("X").Wait()

	// Assert
	require.NoError(t, err)
	assert.Zero(t, mock.CallCount())
	require.NotNil(t, st.State().Venues.SelectedVenue)
	assert.Equal(t, st.State().Venues.Nearby.Venues[0], *st.State().Venues.SelectedVenue)
}

func TestSelectVenue_FetchesDetailsWhenNotLoaded(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	mock.GetVenueDetailsFunc = func(ctx context.Context, id string) (*places.RawPlace, error) {
		return &places.RawPlace{FsqID: id, Name: ptr("Fetched")}, nil
	}
	coord, st := newVenueCoordinator(t, mock)

	require.NoError(t, coord.SelectVenue("Y").Wait())

	assert.Equal(t, []string{"Y"}, mock.DetailsCalls())
	assert.Equal(t, "Fetched", st.State().Venues.SelectedVenue.Name)
	assert.False(t, st.State().Venues.SelectedVenueLoading)
}

func TestSelectVenue_FailureKeepsSelection(t *testing.T) {
	mock := places.NewPlacesAPIClientMock()
	mock.GetVenueDetailsFunc = func(ctx context.Context, id string) (*places.RawPlace, error) {
		return nil, &apperrors.NetworkError{StatusCode: 404, Message: "not found"}
	}
	coord, st := newVenueCoordinator(t, mock)
	st.Dispatch(store.SelectVenueSuccess{Venue: venue.Venue{ID: "keep"}})

	err := coord.SelectVenue("missing").Wait()

	assert.Error(t, err)
	s := st.State().Venues
	assert.Equal(t, "keep", s.SelectedVenue.ID)
	assert.Equal(t, "Failed to get venue details: Request failed with status 404: not found", s.SelectedVenueError)
}
