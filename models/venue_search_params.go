package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SortOrder is the server-side ordering requested from the places search endpoint.
type SortOrder string

const (
	SortDistance   SortOrder = "DISTANCE"
	SortRating     SortOrder = "RATING"
	SortPopularity SortOrder = "POPULARITY"
)

// Search defaults
const (
	DEFAULT_SEARCH_LIMIT      = 20
	DEFAULT_RECOMMENDED_LIMIT = 10
	DEFAULT_SEARCH_RADIUS     = 1000 // meters
)

// VenueSearchParams mirrors the search endpoint's query args. Use zero-values to get defaults.
type VenueSearchParams struct {
	Location   Coordinates // required
	Query      string      // optional
	Categories []string    // optional category ids, e.g. []{"13065"}
	Radius     int         // meters, default 1000
	Limit      int         // default 20
	Sort       SortOrder   // default DISTANCE
}

// WithDefaults fills the unset fields with the general search defaults.
func (p VenueSearchParams) WithDefaults() VenueSearchParams {
	if p.Radius <= 0 {
		p.Radius = DEFAULT_SEARCH_RADIUS
	}
	if p.Limit <= 0 {
		p.Limit = DEFAULT_SEARCH_LIMIT
	}
	if p.Sort == "" {
		p.Sort = SortDistance
	}
	return p
}

// RecommendedParams builds the rating-ordered query used for recommendations.
func RecommendedParams(location Coordinates, limit int) VenueSearchParams {
	if limit <= 0 {
		limit = DEFAULT_RECOMMENDED_LIMIT
	}
	return VenueSearchParams{
		Location: location,
		Limit:    limit,
		Radius:   DEFAULT_SEARCH_RADIUS,
		Sort:     SortRating,
	}
}

// ToValues encodes the params; call WithDefaults first to get default values on the wire.
func (p VenueSearchParams) ToValues() url.Values {
	q := url.Values{}

	q.Set("ll", p.Location.LL())
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if len(p.Categories) > 0 {
		// API expects comma-separated list
		q.Set("categories", strings.Join(p.Categories, ","))
	}
	if p.Radius > 0 {
		q.Set("radius", itoa(p.Radius))
	}
	if p.Limit > 0 {
		q.Set("limit", itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", string(p.Sort))
	}

	return q
}

func itoa(i int) string { return strconv.Itoa(i) }
