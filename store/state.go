package store

import (
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
)

// VenueKind names one of the three venue lists.
type VenueKind string

const (
	KindNearby      VenueKind = "nearby"
	KindRecommended VenueKind = "recommended"
	KindSearch      VenueKind = "search"
)

type VenueList struct {
	Venues  []venue.Venue `json:"venues"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

type VenuesState struct {
	UserLocation              *models.Coordinates `json:"userLocation,omitempty"`
	LocationPermissionGranted bool                `json:"locationPermissionGranted"`
	LocationError             string              `json:"locationError,omitempty"`

	Nearby      VenueList `json:"nearby"`
	Recommended VenueList `json:"recommended"`
	Search      VenueList `json:"search"`

	SelectedVenue        *venue.Venue `json:"selectedVenue,omitempty"`
	SelectedVenueLoading bool         `json:"selectedVenueLoading"`
	SelectedVenueError   string       `json:"selectedVenueError,omitempty"`
}

// List returns the sub-state for kind.
func (s VenuesState) List(kind VenueKind) VenueList {
	switch kind {
	case KindRecommended:
		return s.Recommended
	case KindSearch:
		return s.Search
	default:
		return s.Nearby
	}
}

func (s *VenuesState) setList(kind VenueKind, l VenueList) {
	switch kind {
	case KindRecommended:
		s.Recommended = l
	case KindSearch:
		s.Search = l
	default:
		s.Nearby = l
	}
}

type BucketListState struct {
	Items         []models.BucketListItem `json:"items"`
	FilteredItems []models.BucketListItem `json:"filteredItems"`
	Filters       models.BucketListFilter `json:"filters"`
	Loading       bool                    `json:"loading"`
	Error         string                  `json:"error,omitempty"`
	StorageError  string                  `json:"storageError,omitempty"`
}

type AuthState struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *models.UserProfile `json:"user,omitempty"`
	Loading         bool                `json:"loading"`
	Error           string              `json:"error,omitempty"`
}

// State is the whole client state. Slices held in a State are never mutated after dispatch.
type State struct {
	Venues     VenuesState     `json:"venues"`
	BucketList BucketListState `json:"bucketList"`
	Auth       AuthState       `json:"auth"`
}

// MockUser is the development identity the auth stub starts with.
func MockUser(id string) *models.UserProfile {
	return &models.UserProfile{
		ID:    id,
		Name:  "Test User",
		Email: "test@example.com",
	}
}

// InitialState is the empty state, signed in as the mock user.
func InitialState(userID string) State {
	return State{
		Venues: VenuesState{
			Nearby:      VenueList{Venues: []venue.Venue{}},
			Recommended: VenueList{Venues: []venue.Venue{}},
			Search:      VenueList{Venues: []venue.Venue{}},
		},
		BucketList: BucketListState{
			Items:         []models.BucketListItem{},
			FilteredItems: []models.BucketListItem{},
		},
		Auth: AuthState{
			IsAuthenticated: true,
			User:            MockUser(userID),
		},
	}
}
