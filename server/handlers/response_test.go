package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bucket-list-client/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", &apperrors.NotFoundError{Resource: "bucket list item", ID: "x"}, http.StatusNotFound},
		{"location", &apperrors.LocationError{Reason: apperrors.LocationPermissionDenied}, http.StatusConflict},
		{"upstream failure", &apperrors.NetworkError{StatusCode: 500, Message: "boom"}, http.StatusBadGateway},
		{"upstream not found", &apperrors.NetworkError{StatusCode: 404}, http.StatusNotFound},
		{"storage", fmt.Errorf("saving: %w", &apperrors.StorageError{Op: "set", Key: "k", Err: errors.New("down")}), http.StatusServiceUnavailable},
		{"validation", errors.New("search query is required"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestDecodeBody(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest("POST", "/", nil)
	require.NoError(t, decodeBody(r, &v))
	assert.Empty(t, v.Name)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"franklin"}`))
	require.NoError(t, decodeBody(r, &v))
	assert.Equal(t, "franklin", v.Name)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
	assert.Error(t, decodeBody(r, &v))
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()

	respondWithError(rr, http.StatusBadRequest, "Invalid argument lat")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Invalid argument lat"}`, rr.Body.String())
}
