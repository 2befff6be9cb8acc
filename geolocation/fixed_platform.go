package geolocation

import (
	"context"
	"sync"
	"time"

	"bucket-list-client/models"
)

const DEFAULT_WATCH_INTERVAL = 5 * time.Second

// FixedPlatform reports a configured position. It is the device adapter for headless deployments,
// where the position comes from configuration or from the harness API.
type FixedPlatform struct {
	mu       sync.Mutex
	position models.Coordinates
	allowed  bool
	nextID   WatchHandle
	watches  map[WatchHandle]chan struct{}
}

func NewFixedPlatform(position models.Coordinates, allowed bool) *FixedPlatform {
	return &FixedPlatform{
		position: position,
		allowed:  allowed,
		watches:  make(map[WatchHandle]chan struct{}),
	}
}

// SetPosition moves the device; active watches report it on their next tick.
func (p *FixedPlatform) SetPosition(c models.Coordinates) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = c
}

func (p *FixedPlatform) SetPermission(allowed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allowed = allowed
}

func (p *FixedPlatform) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allowed, nil
}

func (p *FixedPlatform) GetCurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position, nil
}

// WatchPosition reports the current position immediately and then once per interval.
func (p *FixedPlatform) WatchPosition(onUpdate func(models.Coordinates), onError func(error), opts WatchOptions) (WatchHandle, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = DEFAULT_WATCH_INTERVAL
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	stop := make(chan struct{})
	p.watches[id] = stop
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			p.mu.Lock()
			pos := p.position
			p.mu.Unlock()

			select {
			case <-stop:
				return
			default:
			}
			onUpdate(pos)

			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()
	return id, nil
}

func (p *FixedPlatform) ClearWatch(handle WatchHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if stop, ok := p.watches[handle]; ok {
		close(stop)
		delete(p.watches, handle)
	}
}

// ActiveWatches is the number of watches not yet cleared.
func (p *FixedPlatform) ActiveWatches() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.watches)
}
