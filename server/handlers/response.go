package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"bucket-list-client/apperrors"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// statusFor maps a task error onto an HTTP status.
func statusFor(err error) int {
	var (
		ne *apperrors.NetworkError
		le *apperrors.LocationError
		se *apperrors.StorageError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &le):
		return http.StatusConflict
	case errors.As(err, &ne):
		if ne.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case errors.As(err, &se):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// decodeBody decodes an optional JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
