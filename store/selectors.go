package store

import (
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
)

func SelectVenues(s State, kind VenueKind) []venue.Venue {
	return s.Venues.List(kind).Venues
}

// FindVenue looks the id up in the nearby, recommended and search lists, in that order.
func FindVenue(s State, id string) (venue.Venue, bool) {
	for _, kind := range []VenueKind{KindNearby, KindRecommended, KindSearch} {
		for _, v := range s.Venues.List(kind).Venues {
			if v.ID == id {
				return v, true
			}
		}
	}
	return venue.Venue{}, false
}

func SelectUserLocation(s State) (models.Coordinates, bool) {
	if s.Venues.UserLocation == nil {
		return models.Coordinates{}, false
	}
	return *s.Venues.UserLocation, true
}

// SelectUserID is the id used for storage keys; empty when signed out.
func SelectUserID(s State) string {
	if s.Auth.User == nil {
		return ""
	}
	return s.Auth.User.ID
}

func SelectBucketListItem(s State, id string) (models.BucketListItem, bool) {
	if i := indexOf(s.BucketList.Items, id); i >= 0 {
		return s.BucketList.Items[i], true
	}
	return models.BucketListItem{}, false
}

func IsInBucketList(s State, venueID string) bool {
	_, ok := SelectBucketListItem(s, venueID)
	return ok
}

type BucketListStats struct {
	Total   int `json:"total"`
	Visited int `json:"visited"`
	Planned int `json:"planned"`
}

func SelectBucketListStats(s State) BucketListStats {
	st := BucketListStats{Total: len(s.BucketList.Items)}
	for i := range s.BucketList.Items {
		if s.BucketList.Items[i].Visited() {
			st.Visited++
		} else if s.BucketList.Items[i].PlannedVisitDate != nil {
			st.Planned++
		}
	}
	return st
}
