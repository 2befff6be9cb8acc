package services

import (
	"context"
	"sync"

	"bucket-list-client/apperrors"
	"bucket-list-client/geolocation"
	"bucket-list-client/models"
	"bucket-list-client/store"

	"go.uber.org/zap"
)

// LocationService resolves the user position and keeps at most one bounded watch alive.
type LocationService struct {
	geo     *geolocation.Coordinator
	updates Dispatcher
	watch   bool
	logger  *zap.Logger

	mu  sync.Mutex
	sub *geolocation.Subscription
}

// NewLocationService creates the service. Watch updates are dispatched to updates;
// watch disables the follow-up watch after the first fix.
func NewLocationService(geo *geolocation.Coordinator, updates Dispatcher, watch bool, logger *zap.Logger) *LocationService {
	return &LocationService{
		geo:     geo,
		updates: updates,
		watch:   watch,
		logger:  logger.Named("LocationService"),
	}
}

// GetUserLocation asks for permission, takes one fix and then starts a watch.
// Any previous watch is cancelled first.
func (ls *LocationService) GetUserLocation(ctx context.Context, d Dispatcher) (models.Coordinates, error) {
	ls.StopWatching()
	d.Dispatch(store.GetUserLocationRequest{})

	granted := ls.geo.RequestPermission(ctx)
	d.Dispatch(store.SetLocationPermission{Granted: granted})
	if !granted {
		err := &apperrors.LocationError{Reason: apperrors.LocationPermissionDenied}
		ls.logger.Info("location permission not granted")
		d.Dispatch(store.LocationFailure{Error: apperrors.Message(err)})
		return models.Coordinates{}, err
	}

	pos, err := ls.geo.GetCurrentPosition(ctx)
	if err != nil {
		ls.logger.Warn("getting current position failed", zap.Error(err))
		d.Dispatch(store.LocationFailure{Error: apperrors.Message(err)})
		return models.Coordinates{}, err
	}
	d.Dispatch(store.SetUserLocation{Coordinates: pos})

	if ls.watch {
		ls.startWatch(ctx)
	}
	return pos, nil
}

func (ls *LocationService) startWatch(ctx context.Context) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	// superseded before the fix arrived
	if ctx.Err() != nil {
		return
	}
	if ls.sub != nil {
		ls.sub.Cancel()
		ls.sub = nil
	}

	sub, err := ls.geo.WatchPosition(
		func(pos models.Coordinates) {
			ls.updates.Dispatch(store.SetUserLocation{Coordinates: pos})
		},
		func(err error) {
			ls.logger.Warn("location update error", zap.Error(err))
			ls.updates.Dispatch(store.LocationFailure{Error: "Location update error: " + apperrors.Message(err)})
		},
	)
	if err != nil {
		ls.logger.Warn("starting location watch failed", zap.Error(err))
		return
	}
	ls.sub = sub
	ls.logger.Info("watching location")
}

// StopWatching cancels the active watch, if any.
func (ls *LocationService) StopWatching() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.sub != nil {
		ls.sub.Cancel()
		ls.sub = nil
		ls.logger.Info("location watch cancelled")
	}
}

// Watching reports whether a watch is active.
func (ls *LocationService) Watching() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.sub != nil && !ls.sub.Cancelled()
}
