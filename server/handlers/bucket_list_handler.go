package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"bucket-list-client/models"
	services "bucket-list-client/service"
	"bucket-list-client/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	TAGS_QUERY_ARG      = "tags"
	PRIORITY_QUERY_ARG  = "priority"
	VISITED_QUERY_ARG   = "visited"
	SEARCH_QUERY_ARG    = "q"
	SORT_QUERY_ARG      = "sort"
	DIR_QUERY_ARG       = "dir"
	RADIUS_KM_QUERY_ARG = "radius_km"

	DEFAULT_NEARBY_RADIUS_KM = 5.0
)

// BucketListResponse is the filtered view returned by GET /v1/bucket-list.
type BucketListResponse struct {
	Items        []models.BucketListItem `json:"items"`
	Filters      models.BucketListFilter `json:"filters"`
	Stats        store.BucketListStats   `json:"stats"`
	StorageError string                  `json:"storageError,omitempty"`
}

type visitedRequest struct {
	Rating *float64 `json:"rating,omitempty"`
	Review *string  `json:"review,omitempty"`
}

type BucketListHandler struct {
	coordinator *services.Coordinator
	store       *store.Store
	logger      *zap.Logger
	fetched     atomic.Bool
}

func NewBucketListHandler(coordinator *services.Coordinator, st *store.Store, logger *zap.Logger) *BucketListHandler {
	return &BucketListHandler{coordinator: coordinator, store: st, logger: logger.Named("BucketListHandler")}
}

// List handles GET /v1/bucket-list?tags=&priority=&visited=&q=&sort=&dir=
func (h *BucketListHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ensureLoaded(r.URL.Query().Has("reload")); err != nil {
		respondWithError(w, statusFor(err), h.store.State().BucketList.Error)
		return
	}

	// filtered per request; the store's own filter belongs to the client view
	st := h.store.State()
	respondWithJSON(w, http.StatusOK, BucketListResponse{
		Items:        store.ApplyFilters(st.BucketList.Items, filter),
		Filters:      filter,
		Stats:        store.SelectBucketListStats(st),
		StorageError: st.BucketList.StorageError,
	})
}

// ensureLoaded fetches the stored list once, or again when reload is set.
func (h *BucketListHandler) ensureLoaded(reload bool) error {
	if !reload && h.fetched.Load() {
		return nil
	}
	if err := h.coordinator.FetchBucketList().Wait(); err != nil {
		return err
	}
	h.fetched.Store(true)
	return nil
}

func (h *BucketListHandler) ensureLoadedOrRespond(w http.ResponseWriter) bool {
	if err := h.ensureLoaded(false); err != nil {
		respondWithError(w, statusFor(err), h.store.State().BucketList.Error)
		return false
	}
	return true
}

func parseFilter(vals url.Values) (models.BucketListFilter, error) {
	var f models.BucketListFilter
	if v := vals.Get(TAGS_QUERY_ARG); v != "" {
		f.Tags = strings.Split(v, ",")
	}
	if v := vals.Get(PRIORITY_QUERY_ARG); v != "" {
		for _, p := range strings.Split(v, ",") {
			prio := models.Priority(p)
			if prio == "" || !prio.Valid() {
				return f, &invalidArgError{name: PRIORITY_QUERY_ARG}
			}
			f.Priority = append(f.Priority, prio)
		}
	}
	if v := vals.Get(VISITED_QUERY_ARG); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, &invalidArgError{name: VISITED_QUERY_ARG}
		}
		f.Visited = &b
	}
	f.SearchTerm = vals.Get(SEARCH_QUERY_ARG)

	switch key := models.SortKey(vals.Get(SORT_QUERY_ARG)); key {
	case "", models.SortByDateAdded, models.SortByName, models.SortByPriority, models.SortByPlannedDate:
		f.SortBy = key
	default:
		return f, &invalidArgError{name: SORT_QUERY_ARG}
	}
	switch dir := models.SortDirection(vals.Get(DIR_QUERY_ARG)); dir {
	case "", models.SortAsc, models.SortDesc:
		f.SortDirection = dir
	default:
		return f, &invalidArgError{name: DIR_QUERY_ARG}
	}
	return f, nil
}

type invalidArgError struct{ name string }

func (e *invalidArgError) Error() string { return "Invalid argument " + e.name }

// Add handles POST /v1/bucket-list with {"venueId": "..."} or {"venue": {...}}
func (h *BucketListHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoadedOrRespond(w) {
		return
	}
	var in services.AddInput
	if err := decodeBody(r, &in); err != nil || in.ID() == "" {
		respondWithError(w, http.StatusBadRequest, "venueId or venue is required")
		return
	}

	err := h.coordinator.AddToBucketList(in).Wait()
	h.respondWithItem(w, in.ID(), http.StatusCreated, err)
}

// Update handles PATCH /v1/bucket-list/{id}
func (h *BucketListHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoadedOrRespond(w) {
		return
	}
	id := mux.Vars(r)["id"]
	var upd models.BucketListItemUpdate
	if err := decodeBody(r, &upd); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.coordinator.UpdateBucketListItem(id, upd).Wait()
	h.respondWithItem(w, id, http.StatusOK, err)
}

// MarkVisited handles POST /v1/bucket-list/{id}/visited
func (h *BucketListHandler) MarkVisited(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoadedOrRespond(w) {
		return
	}
	id := mux.Vars(r)["id"]
	var req visitedRequest
	if err := decodeBody(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.coordinator.MarkAsVisited(id, req.Rating, req.Review).Wait()
	h.respondWithItem(w, id, http.StatusOK, err)
}

// Remove handles DELETE /v1/bucket-list/{id}
func (h *BucketListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoadedOrRespond(w) {
		return
	}
	id := mux.Vars(r)["id"]

	if err := h.coordinator.RemoveFromBucketList(id).Wait(); err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Nearby handles GET /v1/bucket-list/nearby?radius_km=
func (h *BucketListHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoadedOrRespond(w) {
		return
	}
	radiusKm := DEFAULT_NEARBY_RADIUS_KM
	if v := r.URL.Query().Get(RADIUS_KM_QUERY_ARG); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid argument "+RADIUS_KM_QUERY_ARG)
			return
		}
		radiusKm = f
	}

	matches, err := h.coordinator.NearbySaved(radiusKm * 1000)
	if err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, matches)
}

// respondWithItem writes the item as held in memory. A storage failure still returns the item
// together with the error, since memory kept the change.
func (h *BucketListHandler) respondWithItem(w http.ResponseWriter, id string, okStatus int, err error) {
	item, found := store.SelectBucketListItem(h.store.State(), id)
	switch {
	case err == nil && found:
		respondWithJSON(w, okStatus, item)
	case err == nil:
		respondWithError(w, http.StatusConflict, "request was superseded")
	case found && statusFor(err) == http.StatusServiceUnavailable:
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"item": item, "error": err.Error()})
	default:
		respondWithError(w, statusFor(err), err.Error())
	}
}
