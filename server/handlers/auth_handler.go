package handlers

import (
	"net/http"

	"bucket-list-client/models"
	services "bucket-list-client/service"
	"bucket-list-client/store"

	"go.uber.org/zap"
)

type AuthHandler struct {
	coordinator *services.Coordinator
	store       *store.Store
	logger      *zap.Logger
}

func NewAuthHandler(coordinator *services.Coordinator, st *store.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{coordinator: coordinator, store: st, logger: logger.Named("AuthHandler")}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeBody(r, &creds); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.coordinator.Login(creds).Wait(); err != nil {
		respondWithError(w, http.StatusUnauthorized, h.store.State().Auth.Error)
		return
	}
	respondWithJSON(w, http.StatusOK, h.store.State().Auth)
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.coordinator.Logout().Wait(); err != nil {
		respondWithError(w, http.StatusInternalServerError, h.store.State().Auth.Error)
		return
	}
	respondWithJSON(w, http.StatusOK, h.store.State().Auth)
}
