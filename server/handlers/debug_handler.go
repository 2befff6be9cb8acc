package handlers

import (
	"bytes"
	"net/http"

	"bucket-list-client/store"
	"bucket-list-client/util"

	"go.uber.org/zap"
)

type DebugHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewDebugHandler(st *store.Store, logger *zap.Logger) *DebugHandler {
	return &DebugHandler{store: st, logger: logger.Named("DebugHandler")}
}

// State handles GET /debug/state
func (h *DebugHandler) State(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.State())
}

// Map handles GET /debug/map
func (h *DebugHandler) Map(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()

	var buf bytes.Buffer
	err := util.RenderVenueMap(&buf, util.VenueMapData{
		UserLocation: st.Venues.UserLocation,
		Nearby:       st.Venues.Nearby.Venues,
		BucketList:   st.BucketList.Items,
	})
	if err != nil {
		h.logger.Error("rendering venue map failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
