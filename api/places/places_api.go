package places

import (
	"context"

	"bucket-list-client/models"
)

// PlacesAPI is the outbound port to the places search service.
// Implementations issue exactly one request per call, without caching or retries.
type PlacesAPI interface {
	SearchVenues(ctx context.Context, params models.VenueSearchParams) (*RawSearchResponse, error)
	GetVenueDetails(ctx context.Context, venueID string) (*RawPlace, error)
}
