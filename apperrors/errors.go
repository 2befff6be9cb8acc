// Package apperrors holds the failure kinds surfaced to the store.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned at startup when no places API credential is configured.
var ErrMissingAPIKey = errors.New("places api credential is not configured")

// NetworkError is a failed places API request: non-2xx, timeout or connectivity loss.
type NetworkError struct {
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error (status %d): %s", e.StatusCode, e.Message)
	}
	return "network error: " + e.Message
}

func (e *NetworkError) Unwrap() error { return e.Err }

// LocationReason says why a position could not be obtained.
type LocationReason string

const (
	LocationPermissionDenied LocationReason = "permission_denied"
	LocationUnavailable      LocationReason = "unavailable"
	LocationTimeout          LocationReason = "timeout"
)

// LocationError is a permission denial or a platform position failure.
type LocationError struct {
	Reason LocationReason
	Err    error
}

func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("location error (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("location error (%s)", e.Reason)
}

func (e *LocationError) Unwrap() error { return e.Err }

// NotFoundError references a resource id that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// StorageError is a key-value persistence read or write failure.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsNetwork maps any error coming out of the places client into a NetworkError.
func AsNetwork(err error) error {
	if err == nil {
		return nil
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return err
	}
	return &NetworkError{Message: err.Error(), Err: err}
}

// AsLocation maps any error coming out of the geolocation platform into a LocationError.
func AsLocation(err error) error {
	if err == nil {
		return nil
	}
	var le *LocationError
	if errors.As(err, &le) {
		return err
	}
	reason := LocationUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		reason = LocationTimeout
	}
	return &LocationError{Reason: reason, Err: err}
}

// Message renders err for a state error field.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var (
		ne *NetworkError
		le *LocationError
	)
	switch {
	case errors.As(err, &ne):
		if ne.StatusCode != 0 {
			return fmt.Sprintf("Request failed with status %d: %s", ne.StatusCode, ne.Message)
		}
		return "Request failed: " + ne.Message
	case errors.As(err, &le):
		if le.Reason == LocationPermissionDenied {
			return "Location permission denied"
		}
		return "Failed to get location: " + string(le.Reason)
	}
	return err.Error()
}
