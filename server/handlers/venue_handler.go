package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"bucket-list-client/models"
	services "bucket-list-client/service"
	"bucket-list-client/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	LAT_QUERY_ARG        = "lat"
	LON_QUERY_ARG        = "lon"
	RADIUS_QUERY_ARG     = "radius"
	LIMIT_QUERY_ARG      = "limit"
	QUERY_QUERY_ARG      = "query"
	CATEGORIES_QUERY_ARG = "categories"
)

type VenueHandler struct {
	coordinator *services.Coordinator
	store       *store.Store
	logger      *zap.Logger
}

func NewVenueHandler(coordinator *services.Coordinator, st *store.Store, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{coordinator: coordinator, store: st, logger: logger.Named("VenueHandler")}
}

// FetchNearby handles POST /v1/venues/nearby
func (h *VenueHandler) FetchNearby(w http.ResponseWriter, r *http.Request) {
	h.fetch(w, r, store.KindNearby, h.coordinator.FetchNearbyVenues)
}

// FetchRecommended handles POST /v1/venues/recommended
func (h *VenueHandler) FetchRecommended(w http.ResponseWriter, r *http.Request) {
	h.fetch(w, r, store.KindRecommended, h.coordinator.FetchRecommendedVenues)
}

// Search handles POST /v1/venues/search
func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.fetch(w, r, store.KindSearch, h.coordinator.SearchVenues)
}

func (h *VenueHandler) fetch(w http.ResponseWriter, r *http.Request, kind store.VenueKind, trigger func(services.VenueRequest) *services.Task) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return // error already written
	}

	err := trigger(req).Wait()
	if err != nil {
		h.logger.Info("venue fetch failed", zap.String("kind", string(kind)), zap.Error(err))
	}
	respondWithJSON(w, statusFor(err), h.store.State().Venues.List(kind))
}

// parseRequest reads the JSON body; query args override it.
func (h *VenueHandler) parseRequest(w http.ResponseWriter, r *http.Request) (services.VenueRequest, bool) {
	var req services.VenueRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	vals := r.URL.Query()
	if vals.Has(LAT_QUERY_ARG) || vals.Has(LON_QUERY_ARG) {
		lat, err := strconv.ParseFloat(vals.Get(LAT_QUERY_ARG), 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
			return req, false
		}
		lon, err := strconv.ParseFloat(vals.Get(LON_QUERY_ARG), 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid argument "+LON_QUERY_ARG)
			return req, false
		}
		req.Location = &models.Coordinates{Latitude: lat, Longitude: lon}
	}
	for name, dst := range map[string]*int{RADIUS_QUERY_ARG: &req.Radius, LIMIT_QUERY_ARG: &req.Limit} {
		if !vals.Has(name) {
			continue
		}
		n, err := strconv.Atoi(vals.Get(name))
		if err != nil || n < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid argument "+name)
			return req, false
		}
		*dst = n
	}
	if q := vals.Get(QUERY_QUERY_ARG); q != "" {
		req.Query = q
	}
	if c := vals.Get(CATEGORIES_QUERY_ARG); c != "" {
		req.Categories = strings.Split(c, ",")
	}
	return req, true
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.coordinator.SelectVenue(id).Wait(); err != nil {
		respondWithError(w, statusFor(err), h.store.State().Venues.SelectedVenueError)
		return
	}
	respondWithJSON(w, http.StatusOK, h.store.State().Venues.SelectedVenue)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
