package models

// GeoBounds describes the area a search response covers.
type GeoBounds struct {
	Circle *GeoCircle `json:"circle,omitempty"`
}

type GeoCircle struct {
	Center Coordinates `json:"center"`
	Radius int         `json:"radius"`
}

// SearchContext is the optional context block of a search response.
type SearchContext struct {
	GeoBounds GeoBounds `json:"geoBounds"`
}
