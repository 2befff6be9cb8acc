package db

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"
)

// MockRedisClient is an in-memory RedisClient. It backs the "memory" storage mode and the tests.
type MockRedisClient struct {
	data map[string]string // Key-value store
	mu   sync.RWMutex      // Mutex for thread-safe operations

	// Err, when set, is returned by every operation named in FailOps ("set", "get", "del", "keys", "ping").
	Err     error
	FailOps map[string]bool
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		FailOps: make(map[string]bool),
	}
}

// FailWith makes the named operations return err until Recover is called.
func (m *MockRedisClient) FailWith(err error, ops ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
	for _, op := range ops {
		m.FailOps[op] = true
	}
}

func (m *MockRedisClient) Recover() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = nil
	m.FailOps = make(map[string]bool)
}

func (m *MockRedisClient) failing(op string) error {
	if m.Err != nil && m.FailOps[op] {
		return fmt.Errorf("%s: %w", op, m.Err)
	}
	return nil
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing("set"); err != nil {
		return err
	}
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failing("get"); err != nil {
		return "", err
	}
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing("del"); err != nil {
		return err
	}
	delete(m.data, key)
	return nil
}

// Keys matches glob patterns the way KEYS does for the common cases (*, ?, [..]).
func (m *MockRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failing("keys"); err != nil {
		return nil, err
	}
	keys := []string{}
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockRedisClient) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failing("ping")
}
