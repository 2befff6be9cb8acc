package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsNetwork_WrapsUntypedErrors(t *testing.T) {
	err := AsNetwork(errors.New("connection refused"))

	var ne *NetworkError
	assert.True(t, errors.As(err, &ne))
	assert.Equal(t, 0, ne.StatusCode)
	assert.Equal(t, "connection refused", ne.Message)
}

func TestAsNetwork_KeepsNetworkErrors(t *testing.T) {
	orig := fmt.Errorf("search: %w", &NetworkError{StatusCode: 500, Message: "boom"})

	assert.Same(t, orig, AsNetwork(orig))
	assert.Nil(t, AsNetwork(nil))
}

func TestAsLocation_DeadlineIsTimeout(t *testing.T) {
	err := AsLocation(context.DeadlineExceeded)

	var le *LocationError
	assert.True(t, errors.As(err, &le))
	assert.Equal(t, LocationTimeout, le.Reason)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"status", &NetworkError{StatusCode: 500, Message: "Internal Server Error"}, "Request failed with status 500: Internal Server Error"},
		{"transport", &NetworkError{Message: "timeout"}, "Request failed: timeout"},
		{"denied", &LocationError{Reason: LocationPermissionDenied}, "Location permission denied"},
		{"unavailable", &LocationError{Reason: LocationUnavailable}, "Failed to get location: unavailable"},
		{"not found", &NotFoundError{Resource: "bucket list item", ID: "x"}, `bucket list item "x" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("update: %w", &NotFoundError{Resource: "item", ID: "1"})))
	assert.False(t, IsNotFound(errors.New("other")))
}
