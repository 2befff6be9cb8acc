package models

import "bucket-list-client/models/venue"

// VenueSearchResponse is a search result set after adaptation.
type VenueSearchResponse struct {
	Results      []venue.Venue  `json:"results"`
	TotalResults int            `json:"totalResults"`
	Context      *SearchContext `json:"context,omitempty"`
}
