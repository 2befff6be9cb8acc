package models

import "strconv"

// Coordinates is an immutable latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LL renders the "lat,lng" form used by the places search endpoint.
func (c Coordinates) LL() string {
	return ftoa(c.Latitude) + "," + ftoa(c.Longitude)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
