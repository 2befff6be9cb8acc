// Package geolocation coordinates permission, one-shot positions and bounded position watches.
package geolocation

import (
	"context"
	"time"

	"bucket-list-client/models"
)

// WatchHandle identifies an active platform watch.
type WatchHandle int

type WatchOptions struct {
	Interval         time.Duration
	DistanceInterval float64 // meters
}

// Platform is the device location provider.
type Platform interface {
	RequestPermission(ctx context.Context) (bool, error)
	GetCurrentPosition(ctx context.Context) (models.Coordinates, error)
	// WatchPosition starts delivering positions until ClearWatch is called with the returned handle.
	WatchPosition(onUpdate func(models.Coordinates), onError func(error), opts WatchOptions) (WatchHandle, error)
	ClearWatch(handle WatchHandle)
}
