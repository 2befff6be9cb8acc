package places

import (
	"context"
	"net/http"
	"net/url"

	"bucket-list-client/api"
	"bucket-list-client/apperrors"
	"bucket-list-client/config"
	"bucket-list-client/models"
)

const (
	SEARCH_ENDPOINT = "/places/search"
	PLACE_ENDPOINT  = "/places/"
)

// PlacesAPIClient embeds the common HTTPClient
type PlacesAPIClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          config.Secret
}

// NewPlacesAPIClient creates a new instance of PlacesAPIClient. An empty key is a configuration error.
func NewPlacesAPIClient(httpClient *api.HTTPClient, apiKey config.Secret) (*PlacesAPIClient, error) {
	if !apiKey.IsSet() {
		return nil, apperrors.ErrMissingAPIKey
	}
	return &PlacesAPIClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}, nil
}

// SearchVenues runs one search around params.Location. Unset params take the search defaults.
func (c *PlacesAPIClient) SearchVenues(ctx context.Context, params models.VenueSearchParams) (*RawSearchResponse, error) {
	var response RawSearchResponse
	err := c.Request(ctx, http.MethodGet, SEARCH_ENDPOINT, params.WithDefaults().ToValues(), c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenueDetails retrieves a single place given its id
func (c *PlacesAPIClient) GetVenueDetails(ctx context.Context, venueID string) (*RawPlace, error) {
	var response RawPlace
	err := c.Request(ctx, http.MethodGet, PLACE_ENDPOINT+url.PathEscape(venueID), nil, c.headers(), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *PlacesAPIClient) headers() map[string]string {
	return map[string]string{
		"Accept":        "application/json",
		"Authorization": c.apiKey.Value(),
	}
}
