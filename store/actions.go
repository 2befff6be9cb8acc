package store

import (
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
)

// Action is a state transition request handled by Reduce.
type Action interface {
	ActionType() string
}

// Venues

type FetchVenuesRequest struct{ Kind VenueKind }
type FetchVenuesSuccess struct {
	Kind   VenueKind
	Venues []venue.Venue
}
type FetchVenuesFailure struct {
	Kind  VenueKind
	Error string
}

type SelectVenueRequest struct{ ID string }
type SelectVenueSuccess struct{ Venue venue.Venue }
type SelectVenueFailure struct{ Error string }
type ClearSelectedVenue struct{}

// Location

type GetUserLocationRequest struct{}
type SetUserLocation struct{ Coordinates models.Coordinates }
type SetLocationPermission struct{ Granted bool }
type LocationFailure struct{ Error string }

// Bucket list

type FetchBucketListRequest struct{}
type FetchBucketListSuccess struct{ Items []models.BucketListItem }
type FetchBucketListFailure struct{ Error string }

type BucketListMutationRequest struct{ ID string }
type AddBucketListItemSuccess struct{ Item models.BucketListItem }
type UpdateBucketListItemSuccess struct{ Item models.BucketListItem }
type RemoveBucketListItemSuccess struct{ ID string }
type BucketListMutationFailure struct{ Error string }

// BucketListStorageFailure follows a success action whose write-through failed.
type BucketListStorageFailure struct{ Error string }

type SetBucketListFilters struct{ Filter models.BucketListFilter }
type ClearBucketListFilters struct{}

// Auth

type LoginRequest struct{}
type LoginSuccess struct{ User models.UserProfile }
type LoginFailure struct{ Error string }
type LogoutRequest struct{}

// LogoutSuccess signs out; a non-nil KeepUser stays signed in (development).
type LogoutSuccess struct{ KeepUser *models.UserProfile }
type LogoutFailure struct{ Error string }
type ResetToMockUser struct{ User models.UserProfile }
type ClearAuthError struct{}

func (a FetchVenuesRequest) ActionType() string { return "venues/fetch" + kindSuffix(a.Kind) }
func (a FetchVenuesSuccess) ActionType() string {
	return "venues/fetch" + kindSuffix(a.Kind) + "Success"
}
func (a FetchVenuesFailure) ActionType() string {
	return "venues/fetch" + kindSuffix(a.Kind) + "Failure"
}
func (SelectVenueRequest) ActionType() string { return "venues/selectVenue" }
func (SelectVenueSuccess) ActionType() string { return "venues/setSelectedVenue" }
func (SelectVenueFailure) ActionType() string { return "venues/selectVenueFailure" }
func (ClearSelectedVenue) ActionType() string { return "venues/clearSelectedVenue" }
func (GetUserLocationRequest) ActionType() string { return "venues/getUserLocation" }
func (SetUserLocation) ActionType() string { return "venues/setUserLocation" }
func (SetLocationPermission) ActionType() string { return "venues/setLocationPermission" }
func (LocationFailure) ActionType() string { return "venues/locationFailure" }

func (FetchBucketListRequest) ActionType() string { return "bucketList/fetchBucketList" }
func (FetchBucketListSuccess) ActionType() string { return "bucketList/fetchBucketListSuccess" }
func (FetchBucketListFailure) ActionType() string { return "bucketList/fetchBucketListFailure" }
func (BucketListMutationRequest) ActionType() string { return "bucketList/mutate" }
func (AddBucketListItemSuccess) ActionType() string { return "bucketList/addToBucketListSuccess" }
func (UpdateBucketListItemSuccess) ActionType() string { return "bucketList/updateBucketListItemSuccess" }
func (RemoveBucketListItemSuccess) ActionType() string { return "bucketList/removeFromBucketListSuccess" }
func (BucketListMutationFailure) ActionType() string { return "bucketList/mutationFailure" }
func (BucketListStorageFailure) ActionType() string { return "bucketList/storageFailure" }
func (SetBucketListFilters) ActionType() string { return "bucketList/setFilters" }
func (ClearBucketListFilters) ActionType() string { return "bucketList/clearFilters" }

func (LoginRequest) ActionType() string { return "auth/login" }
func (LoginSuccess) ActionType() string { return "auth/loginSuccess" }
func (LoginFailure) ActionType() string { return "auth/loginFailure" }
func (LogoutRequest) ActionType() string { return "auth/logout" }
func (LogoutSuccess) ActionType() string { return "auth/logoutSuccess" }
func (LogoutFailure) ActionType() string { return "auth/logoutFailure" }
func (ResetToMockUser) ActionType() string { return "auth/resetToMockUser" }
func (ClearAuthError) ActionType() string { return "auth/clearError" }

func kindSuffix(k VenueKind) string {
	switch k {
	case KindRecommended:
		return "RecommendedVenues"
	case KindSearch:
		return "SearchVenues"
	default:
		return "NearbyVenues"
	}
}
