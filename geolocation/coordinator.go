package geolocation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"bucket-list-client/apperrors"
	"bucket-list-client/models"

	"go.uber.org/zap"
)

const (
	DEFAULT_WATCH_CEILING    = 30 * time.Minute
	DEFAULT_POSITION_TIMEOUT = 15 * time.Second
)

type PermissionState int

const (
	NoPermission PermissionState = iota
	PermissionRequested
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionRequested:
		return "requested"
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "none"
	}
}

// Coordinator owns the permission state and hands out bounded watch subscriptions.
type Coordinator struct {
	platform        Platform
	logger          *zap.Logger
	ceiling         time.Duration
	positionTimeout time.Duration
	watchOptions    WatchOptions

	mu    sync.RWMutex
	state PermissionState
}

type CoordinatorOption func(*Coordinator)

// WithWatchCeiling bounds every watch; it self-cancels after d.
func WithWatchCeiling(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		if d > 0 {
			c.ceiling = d
		}
	}
}

func WithPositionTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		if d > 0 {
			c.positionTimeout = d
		}
	}
}

func WithWatchOptions(o WatchOptions) CoordinatorOption {
	return func(c *Coordinator) { c.watchOptions = o }
}

func NewCoordinator(platform Platform, logger *zap.Logger, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		platform:        platform,
		logger:          logger.Named("GeolocationCoordinator"),
		ceiling:         DEFAULT_WATCH_CEILING,
		positionTimeout: DEFAULT_POSITION_TIMEOUT,
		watchOptions:    WatchOptions{Interval: DEFAULT_WATCH_INTERVAL, DistanceInterval: 10},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) State() PermissionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Coordinator) setState(s PermissionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// RequestPermission asks the platform for access. Any platform error counts as a denial.
func (c *Coordinator) RequestPermission(ctx context.Context) bool {
	c.setState(PermissionRequested)

	granted, err := c.platform.RequestPermission(ctx)
	if err != nil {
		c.logger.Warn("permission request failed", zap.Error(err))
		granted = false
	}
	if granted {
		c.setState(PermissionGranted)
	} else {
		c.setState(PermissionDenied)
	}
	c.logger.Debug("permission resolved", zap.Stringer("state", c.State()))
	return granted
}

// GetCurrentPosition returns one fix. It fails with a LocationError unless permission was granted.
func (c *Coordinator) GetCurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if c.State() != PermissionGranted {
		return models.Coordinates{}, &apperrors.LocationError{Reason: apperrors.LocationPermissionDenied}
	}

	ctx, cancel := context.WithTimeout(ctx, c.positionTimeout)
	defer cancel()

	pos, err := c.platform.GetCurrentPosition(ctx)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return models.Coordinates{}, apperrors.AsLocation(err)
	}
	return pos, nil
}

// WatchPosition subscribes to position updates. The subscription ends on Cancel or after the ceiling.
// onError may be nil; errors are passed as LocationError.
func (c *Coordinator) WatchPosition(onUpdate func(models.Coordinates), onError func(error)) (*Subscription, error) {
	if c.State() != PermissionGranted {
		return nil, &apperrors.LocationError{Reason: apperrors.LocationPermissionDenied}
	}

	s := &Subscription{platform: c.platform, done: make(chan struct{}), logger: c.logger}
	handle, err := c.platform.WatchPosition(
		func(pos models.Coordinates) { s.deliver(func() { onUpdate(pos) }) },
		func(err error) {
			if onError != nil {
				s.deliver(func() { onError(apperrors.AsLocation(err)) })
			}
		},
		c.watchOptions,
	)
	if err != nil {
		return nil, apperrors.AsLocation(err)
	}

	s.mu.Lock()
	s.handle = handle
	s.started = true
	s.timer = time.AfterFunc(c.ceiling, func() {
		c.logger.Info("watch reached its ceiling, cancelling", zap.Duration("ceiling", c.ceiling))
		s.Cancel()
	})
	s.mu.Unlock()

	return s, nil
}

// Subscription is an active position watch.
type Subscription struct {
	platform Platform
	logger   *zap.Logger

	mu      sync.Mutex
	handle  WatchHandle
	started bool
	timer   *time.Timer

	deliverMu sync.Mutex
	cancelled atomic.Bool
	once      sync.Once
	done      chan struct{}
}

func (s *Subscription) deliver(fn func()) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if s.cancelled.Load() {
		return
	}
	fn()
}

// Cancel stops the watch. Safe to call more than once and from any goroutine, but not from inside
// an update or error callback: it waits for an in-progress delivery to return, so no callback runs
// after Cancel returns.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.deliverMu.Lock()
		s.cancelled.Store(true)
		s.deliverMu.Unlock()

		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		handle, started := s.handle, s.started
		s.mu.Unlock()

		if started {
			s.platform.ClearWatch(handle)
		}
		close(s.done)
	})
}

// Done is closed once the subscription has been cancelled.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) Cancelled() bool {
	return s.cancelled.Load()
}
