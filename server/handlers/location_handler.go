package handlers

import (
	"net/http"

	"bucket-list-client/models"
	services "bucket-list-client/service"
	"bucket-list-client/store"

	"go.uber.org/zap"
)

type LocationResponse struct {
	Coordinates       *models.Coordinates `json:"coordinates"`
	PermissionGranted bool                `json:"permissionGranted"`
	Error             string              `json:"error,omitempty"`
}

type LocationHandler struct {
	coordinator *services.Coordinator
	store       *store.Store
	logger      *zap.Logger
}

func NewLocationHandler(coordinator *services.Coordinator, st *store.Store, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{coordinator: coordinator, store: st, logger: logger.Named("LocationHandler")}
}

// GetUserLocation handles POST /v1/location
func (h *LocationHandler) GetUserLocation(w http.ResponseWriter, r *http.Request) {
	err := h.coordinator.GetUserLocation().Wait()
	if err != nil {
		h.logger.Info("get user location failed", zap.Error(err))
	}

	v := h.store.State().Venues
	respondWithJSON(w, statusFor(err), LocationResponse{
		Coordinates:       v.UserLocation,
		PermissionGranted: v.LocationPermissionGranted,
		Error:             v.LocationError,
	})
}
