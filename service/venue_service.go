package services

import (
	"context"
	"errors"
	"sort"

	"bucket-list-client/adapter"
	"bucket-list-client/api/places"
	"bucket-list-client/apperrors"
	"bucket-list-client/models"
	"bucket-list-client/models/venue"
	"bucket-list-client/store"

	"go.uber.org/zap"
)

// Default radii in meters
const (
	NEARBY_RADIUS = 1000
	SEARCH_RADIUS = 2000
)

var errQueryRequired = errors.New("search query is required")

// VenueRequest carries the optional arguments of the venue fetch intents.
// A nil Location means the user location held in the store.
type VenueRequest struct {
	Location   *models.Coordinates `json:"coordinates,omitempty"`
	Query      string              `json:"query,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	Radius     int                 `json:"radius,omitempty"`
	Limit      int                 `json:"limit,omitempty"`
}

type VenueService struct {
	placesAPI places.PlacesAPI
	store     *store.Store
	logger    *zap.Logger
}

// NewVenueService constructs a new VenueService around the shared places client.
func NewVenueService(placesAPI places.PlacesAPI, st *store.Store, logger *zap.Logger) *VenueService {
	return &VenueService{
		placesAPI: placesAPI,
		store:     st,
		logger:    logger.Named("VenueService"),
	}
}

// FetchVenues loads one venue list. Failures are dispatched and returned as typed errors.
func (vs *VenueService) FetchVenues(ctx context.Context, d Dispatcher, kind store.VenueKind, req VenueRequest) error {
	d.Dispatch(store.FetchVenuesRequest{Kind: kind})

	venues, err := vs.fetch(ctx, kind, req)
	if err != nil {
		vs.logger.Warn("fetching venues failed", zap.String("kind", string(kind)), zap.Error(err))
		d.Dispatch(store.FetchVenuesFailure{Kind: kind, Error: apperrors.Message(err)})
		return err
	}

	vs.logger.Info("fetched venues", zap.String("kind", string(kind)), zap.Int("count", len(venues)))
	d.Dispatch(store.FetchVenuesSuccess{Kind: kind, Venues: venues})
	return nil
}

func (vs *VenueService) fetch(ctx context.Context, kind store.VenueKind, req VenueRequest) ([]venue.Venue, error) {
	loc, err := vs.location(req)
	if err != nil {
		return nil, err
	}

	params, err := searchParams(kind, loc, req)
	if err != nil {
		return nil, err
	}

	raw, err := vs.placesAPI.SearchVenues(ctx, params)
	if err != nil {
		return nil, apperrors.AsNetwork(err)
	}

	venues := adapter.MapSearchResponse(*raw).Results
	if kind == store.KindRecommended {
		sortByRating(venues)
	}
	return venues, nil
}

func (vs *VenueService) location(req VenueRequest) (models.Coordinates, error) {
	if req.Location != nil {
		return *req.Location, nil
	}
	if loc, ok := store.SelectUserLocation(vs.store.State()); ok {
		return loc, nil
	}
	return models.Coordinates{}, &apperrors.LocationError{Reason: apperrors.LocationUnavailable}
}

func searchParams(kind store.VenueKind, loc models.Coordinates, req VenueRequest) (models.VenueSearchParams, error) {
	switch kind {
	case store.KindRecommended:
		return models.RecommendedParams(loc, req.Limit), nil
	case store.KindSearch:
		if req.Query == "" && len(req.Categories) == 0 {
			return models.VenueSearchParams{}, errQueryRequired
		}
		return models.VenueSearchParams{
			Location:   loc,
			Query:      req.Query,
			Categories: req.Categories,
			Radius:     withDefault(req.Radius, SEARCH_RADIUS),
			Limit:      req.Limit,
		}, nil
	default:
		return models.VenueSearchParams{
			Location:   loc,
			Categories: req.Categories,
			Radius:     withDefault(req.Radius, NEARBY_RADIUS),
			Limit:      req.Limit,
		}, nil
	}
}

// sortByRating orders by rating descending; unrated venues go last, ties keep the API order.
func sortByRating(venues []venue.Venue) {
	sort.SliceStable(venues, func(i, j int) bool {
		a, b := venues[i].Rating, venues[j].Rating
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
}

// SelectVenue copies the venue from a loaded list when present; otherwise it fetches the details.
func (vs *VenueService) SelectVenue(ctx context.Context, d Dispatcher, venueID string) error {
	if v, ok := store.FindVenue(vs.store.State(), venueID); ok {
		vs.logger.Debug("selected venue from loaded lists", zap.String("venue_id", venueID))
		d.Dispatch(store.SelectVenueSuccess{Venue: v})
		return nil
	}

	d.Dispatch(store.SelectVenueRequest{ID: venueID})
	v, err := fetchVenue(ctx, vs.placesAPI, venueID)
	if err != nil {
		vs.logger.Warn("fetching venue details failed", zap.String("venue_id", venueID), zap.Error(err))
		d.Dispatch(store.SelectVenueFailure{Error: "Failed to get venue details: " + apperrors.Message(err)})
		return err
	}

	d.Dispatch(store.SelectVenueSuccess{Venue: v})
	return nil
}

// fetchVenue requests and maps the details of one venue.
func fetchVenue(ctx context.Context, placesAPI places.PlacesAPI, venueID string) (venue.Venue, error) {
	raw, err := placesAPI.GetVenueDetails(ctx, venueID)
	if err != nil {
		return venue.Venue{}, apperrors.AsNetwork(err)
	}
	return adapter.MapVenueDetails(*raw), nil
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
