// Package adapter translates Places v3 payloads into the client's venue model.
package adapter

import (
	"strconv"

	"bucket-list-client/api/places"
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
)

const (
	hoursLikelyOpen     = "LikelyOpen"
	hoursVeryLikelyOpen = "VeryLikelyOpen"
)

// MapSearchResponse converts a search payload. TotalResults falls back to the result count.
func MapSearchResponse(raw places.RawSearchResponse) models.VenueSearchResponse {
	results := make([]venue.Venue, 0, len(raw.Results))
	for _, p := range raw.Results {
		results = append(results, MapVenue(p))
	}

	total := len(results)
	if raw.TotalResults != nil {
		total = *raw.TotalResults
	}

	resp := models.VenueSearchResponse{
		Results:      results,
		TotalResults: total,
	}
	if raw.Context != nil && raw.Context.GeoBounds != nil && raw.Context.GeoBounds.Circle != nil {
		c := raw.Context.GeoBounds.Circle
		resp.Context = &models.SearchContext{
			GeoBounds: models.GeoBounds{Circle: &models.GeoCircle{
				Center: models.Coordinates{Latitude: c.Center.Latitude, Longitude: c.Center.Longitude},
				Radius: c.Radius,
			}},
		}
	}
	return resp
}

// MapVenueDetails converts a details payload.
func MapVenueDetails(raw places.RawPlace) venue.Venue {
	return MapVenue(raw)
}

// MapVenue converts a single place. Missing collections become empty slices, missing scalars stay nil.
func MapVenue(raw places.RawPlace) venue.Venue {
	v := venue.Venue{
		ID:          raw.FsqID,
		Categories:  make([]venue.Category, 0, len(raw.Categories)),
		Photos:      make([]venue.Photo, 0, len(raw.Photos)),
		Rating:      copyFloat(raw.Rating),
		Description: raw.Description,
		Distance:    copyInt(raw.Distance),
	}
	if raw.Name != nil {
		v.Name = *raw.Name
	}

	if l := raw.Location; l != nil {
		v.Location = venue.Location{
			Address:          l.Address,
			City:             l.Locality,
			Region:           l.Region,
			Country:          l.Country,
			PostalCode:       l.Postcode,
			FormattedAddress: l.FormattedAddress,
		}
	}
	if raw.Geocodes != nil && raw.Geocodes.Main != nil {
		lat, lng := raw.Geocodes.Main.Latitude, raw.Geocodes.Main.Longitude
		v.Location.Lat, v.Location.Lng = &lat, &lng
	}

	for _, c := range raw.Categories {
		cat := venue.Category{ID: categoryID(c.ID), Name: c.Name, Primary: c.Primary}
		if c.Icon != nil {
			cat.Icon = &venue.Icon{Prefix: c.Icon.Prefix, Suffix: c.Icon.Suffix}
		}
		v.Categories = append(v.Categories, cat)
	}

	for _, p := range raw.Photos {
		v.Photos = append(v.Photos, venue.Photo{
			ID:     p.ID,
			Prefix: p.Prefix,
			Suffix: p.Suffix,
			Width:  copyInt(p.Width),
			Height: copyInt(p.Height),
		})
	}

	if raw.Price != nil {
		v.Price = &venue.Price{Tier: *raw.Price, Message: PriceMessage(*raw.Price)}
	}

	if raw.Hours != nil {
		status := raw.Hours.Status
		if status == "" {
			status = raw.Hours.Display
		}
		open := raw.ClosedBucket == hoursLikelyOpen || raw.ClosedBucket == hoursVeryLikelyOpen
		if raw.Hours.OpenNow != nil {
			open = *raw.Hours.OpenNow
		}
		v.Hours = &venue.Hours{Status: status, IsOpen: &open}
	}

	if raw.Tel != "" || raw.Website != "" || raw.SocialMedia != nil {
		c := &venue.Contact{Phone: raw.Tel, URL: raw.Website}
		if s := raw.SocialMedia; s != nil {
			c.Twitter, c.Instagram, c.Facebook = s.Twitter, s.Instagram, s.Facebook
		}
		v.Contact = c
	}

	return v
}

// PriceMessage renders a price tier; unknown tiers render as "$".
func PriceMessage(tier int) string {
	switch tier {
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3:
		return "$$$"
	case 4:
		return "$$$$"
	default:
		return "$"
	}
}

func categoryID(id any) string {
	switch t := id.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
