package services

import (
	"context"
	"sync"
	"testing"

	"bucket-list-client/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recorder is a Dispatcher that keeps the action types it received.
type recorder struct {
	mu      sync.Mutex
	actions []store.Action
}

func (r *recorder) Dispatch(a store.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

func (r *recorder) received() []store.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]store.Action(nil), r.actions...)
}

func TestTaskRunner_SupersededTaskIsCancelledAndDropped(t *testing.T) {
	// Arrange
	rec := &recorder{}
	runner := NewTaskRunner(rec, zap.NewNop())
	started := make(chan struct{})
	release := make(chan struct{})
	var firstCtxErr error

	// Act
	first := runner.Run("k", func(ctx context.Context, d Dispatcher) error {
		close(started)
		<-release
		firstCtxErr = ctx.Err()
		d.Dispatch(store.FetchVenuesSuccess{Kind: store.KindRecommended})
		return nil
	})
	<-started
	second := runner.Run("k", func(ctx context.Context, d Dispatcher) error {
		d.Dispatch(store.FetchVenuesFailure{Kind: store.KindRecommended, Error: "second"})
		return nil
	})
	require.NoError(t, second.Wait())
	close(release)
	require.NoError(t, first.Wait())

	// Assert
	assert.ErrorIs(t, firstCtxErr, context.Canceled)
	assert.False(t, isCurrent(runner, first))
	got := rec.received()
	require.Len(t, got, 1)
	assert.Equal(t, store.FetchVenuesFailure{Kind: store.KindRecommended, Error: "second"}, got[0])
	assert.NotEqual(t, first.ID(), second.ID())
}

func isCurrent(r *TaskRunner, t *Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current[t.kind] == t
}

func TestTaskRunner_KindsAreIndependent(t *testing.T) {
	rec := &recorder{}
	runner := NewTaskRunner(rec, zap.NewNop())
	release := make(chan struct{})

	a := runner.Run("a", func(ctx context.Context, d Dispatcher) error {
		<-release
		d.Dispatch(store.ClearAuthError{})
		return ctx.Err()
	})
	b := runner.Run("b", func(ctx context.Context, d Dispatcher) error {
		d.Dispatch(store.ClearSelectedVenue{})
		return nil
	})
	require.NoError(t, b.Wait())
	close(release)

	assert.NoError(t, a.Wait())
	assert.Len(t, rec.received(), 2)
}

func TestTaskRunner_WaitReturnsTaskError(t *testing.T) {
	runner := NewTaskRunner(&recorder{}, zap.NewNop())
	boom := assert.AnError

	task := runner.Run("k", func(context.Context, Dispatcher) error { return boom })

	assert.ErrorIs(t, task.Wait(), boom)
	assert.Equal(t, "k", task.Kind())
}

func TestTaskRunner_ShutdownCancelsRunningTasks(t *testing.T) {
	runner := NewTaskRunner(&recorder{}, zap.NewNop())
	started := make(chan struct{})

	task := runner.Run("k", func(ctx context.Context, d Dispatcher) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	<-started
	runner.Shutdown()

	assert.ErrorIs(t, task.Wait(), context.Canceled)
}

func TestTask_Superseded(t *testing.T) {
	runner := NewTaskRunner(&recorder{}, zap.NewNop())
	release := make(chan struct{})
	block := func(ctx context.Context, d Dispatcher) error {
		<-release
		return nil
	}

	first := runner.Run("k", block)
	assert.False(t, first.Superseded())
	second := runner.Run("k", block)

	assert.True(t, first.Superseded())
	assert.False(t, second.Superseded())
	close(release)
	runner.Wait()
}
