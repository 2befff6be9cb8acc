package places

import (
	"context"
	"sync"

	"bucket-list-client/models"
	"bucket-list-client/util"
)

// PlacesAPIClientMock records calls and answers through overridable funcs.
// Without a func set, searches return no results and details return an empty place with the requested id.
type PlacesAPIClientMock struct {
	SearchVenuesFunc    func(ctx context.Context, params models.VenueSearchParams) (*RawSearchResponse, error)
	GetVenueDetailsFunc func(ctx context.Context, venueID string) (*RawPlace, error)

	mu           sync.Mutex
	searchCalls  []models.VenueSearchParams
	detailsCalls []string
}

// NewPlacesAPIClientMock creates a new instance of PlacesAPIClientMock
func NewPlacesAPIClientMock() *PlacesAPIClientMock {
	return &PlacesAPIClientMock{}
}

// NewFixturePlacesAPIClientMock answers from JSON fixtures on disk. Details are served from the
// search fixture when the id is present there, else from the details fixture.
func NewFixturePlacesAPIClientMock(searchPath, detailsPath string) (*PlacesAPIClientMock, error) {
	search, err := util.ReadJSONFile[RawSearchResponse](searchPath)
	if err != nil {
		return nil, err
	}
	details, err := util.ReadJSONFile[RawPlace](detailsPath)
	if err != nil {
		return nil, err
	}

	m := NewPlacesAPIClientMock()
	m.SearchVenuesFunc = func(ctx context.Context, params models.VenueSearchParams) (*RawSearchResponse, error) {
		resp := *search
		limit := params.WithDefaults().Limit
		if len(resp.Results) > limit {
			resp.Results = resp.Results[:limit]
		}
		return &resp, nil
	}
	m.GetVenueDetailsFunc = func(ctx context.Context, venueID string) (*RawPlace, error) {
		for _, p := range search.Results {
			if p.FsqID == venueID {
				place := p
				return &place, nil
			}
		}
		place := *details
		place.FsqID = venueID
		return &place, nil
	}
	return m, nil
}

func (m *PlacesAPIClientMock) SearchVenues(ctx context.Context, params models.VenueSearchParams) (*RawSearchResponse, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, params)
	fn := m.SearchVenuesFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, params)
	}
	return &RawSearchResponse{Results: []RawPlace{}}, nil
}

func (m *PlacesAPIClientMock) GetVenueDetails(ctx context.Context, venueID string) (*RawPlace, error) {
	m.mu.Lock()
	m.detailsCalls = append(m.detailsCalls, venueID)
	fn := m.GetVenueDetailsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, venueID)
	}
	return &RawPlace{FsqID: venueID}, nil
}

func (m *PlacesAPIClientMock) SearchCalls() []models.VenueSearchParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.VenueSearchParams(nil), m.searchCalls...)
}

func (m *PlacesAPIClientMock) DetailsCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.detailsCalls...)
}

// CallCount is the total number of requests the mock has served.
func (m *PlacesAPIClientMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.searchCalls) + len(m.detailsCalls)
}
