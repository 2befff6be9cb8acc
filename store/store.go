// Package store holds the single client state and applies actions to it.
package store

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Listener is called after every dispatch with the new state.
// Listeners run on the dispatching goroutine and must not call Dispatch themselves.
type Listener func(State)

// Store owns the State. Dispatches are serialized; readers never block on listeners.
type Store struct {
	logger *zap.Logger

	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func New(initial State, logger *zap.Logger) *Store {
	return &Store{
		logger:    logger.Named("Store"),
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces a into the state and notifies the listeners in subscription order.
func (s *Store) Dispatch(a Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	listeners := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	s.logger.Debug("dispatch", zap.String("action", a.ActionType()))
	for _, l := range listeners {
		l(next)
	}
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}
