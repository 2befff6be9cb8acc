package store

import (
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
)

// Reduce returns the state after applying a. Unknown actions leave the state unchanged.
func Reduce(s State, a Action) State {
	s.Venues = reduceVenues(s.Venues, a)
	s.BucketList = reduceBucketList(s.BucketList, a)
	s.Auth = reduceAuth(s.Auth, a)
	return s
}

func reduceVenues(s VenuesState, a Action) VenuesState {
	switch a := a.(type) {
	case FetchVenuesRequest:
		l := s.List(a.Kind)
		l.Loading, l.Error = true, ""
		s.setList(a.Kind, l)
	case FetchVenuesSuccess:
		venues := a.Venues
		if venues == nil {
			venues = []venue.Venue{}
		}
		s.setList(a.Kind, VenueList{Venues: venues})
	case FetchVenuesFailure:
		l := s.List(a.Kind)
		l.Loading, l.Error = false, a.Error
		s.setList(a.Kind, l)

	case SelectVenueRequest:
		s.SelectedVenueLoading, s.SelectedVenueError = true, ""
	case SelectVenueSuccess:
		v := a.Venue
		s.SelectedVenue, s.SelectedVenueLoading, s.SelectedVenueError = &v, false, ""
	case SelectVenueFailure:
		s.SelectedVenueLoading, s.SelectedVenueError = false, a.Error
	case ClearSelectedVenue:
		s.SelectedVenue, s.SelectedVenueLoading, s.SelectedVenueError = nil, false, ""

	case GetUserLocationRequest:
		s.LocationError = ""
		s.Nearby.Loading, s.Nearby.Error = true, ""
	case SetUserLocation:
		c := a.Coordinates
		s.UserLocation, s.LocationError = &c, ""
		s.Nearby.Loading = false
	case SetLocationPermission:
		s.LocationPermissionGranted = a.Granted
	case LocationFailure:
		// nearby venues cannot load without a position
		s.LocationError = a.Error
		s.Nearby.Loading, s.Nearby.Error = false, a.Error
	}
	return s
}

func reduceBucketList(s BucketListState, a Action) BucketListState {
	switch a := a.(type) {
	case FetchBucketListRequest:
		s.Loading, s.Error = true, ""
	case FetchBucketListSuccess:
		items := a.Items
		if items == nil {
			items = []models.BucketListItem{}
		}
		s = withItems(s, items)
		s.Loading = false
	case FetchBucketListFailure:
		s.Loading, s.Error = false, a.Error

	case BucketListMutationRequest:
		s.Loading, s.Error, s.StorageError = true, "", ""
	case AddBucketListItemSuccess:
		if indexOf(s.Items, a.Item.ID) < 0 {
			items := make([]models.BucketListItem, 0, len(s.Items)+1)
			items = append(items, s.Items...)
			s = withItems(s, append(items, a.Item))
		}
		s.Loading = false
	case UpdateBucketListItemSuccess:
		if i := indexOf(s.Items, a.Item.ID); i >= 0 {
			items := append([]models.BucketListItem(nil), s.Items...)
			items[i] = a.Item
			s = withItems(s, items)
		}
		s.Loading = false
	case RemoveBucketListItemSuccess:
		if i := indexOf(s.Items, a.ID); i >= 0 {
			items := make([]models.BucketListItem, 0, len(s.Items)-1)
			items = append(items, s.Items[:i]...)
			s = withItems(s, append(items, s.Items[i+1:]...))
		}
		s.Loading = false
	case BucketListMutationFailure:
		s.Loading, s.Error = false, a.Error
	case BucketListStorageFailure:
		s.Loading, s.StorageError = false, a.Error

	case SetBucketListFilters:
		s.Filters = a.Filter
		s.FilteredItems = ApplyFilters(s.Items, s.Filters)
	case ClearBucketListFilters:
		s.Filters = models.BucketListFilter{}
		s.FilteredItems = ApplyFilters(s.Items, s.Filters)
	}
	return s
}

func withItems(s BucketListState, items []models.BucketListItem) BucketListState {
	s.Items = items
	s.FilteredItems = ApplyFilters(items, s.Filters)
	return s
}

func indexOf(items []models.BucketListItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case LoginRequest, LogoutRequest:
		s.Loading, s.Error = true, ""
	case LoginSuccess:
		u := a.User
		s = AuthState{IsAuthenticated: true, User: &u}
	case LoginFailure:
		s.Loading, s.Error = false, a.Error
	case LogoutSuccess:
		if a.KeepUser != nil {
			u := *a.KeepUser
			s = AuthState{IsAuthenticated: true, User: &u}
		} else {
			s = AuthState{}
		}
	case LogoutFailure:
		s.Loading, s.Error = false, a.Error
	case ResetToMockUser:
		u := a.User
		s = AuthState{IsAuthenticated: true, User: &u}
	case ClearAuthError:
		s.Error = ""
	}
	return s
}
