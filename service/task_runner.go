package services

import (
	"context"
	"sync"

	"bucket-list-client/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher receives actions. *store.Store and *Task both implement it.
type Dispatcher interface {
	Dispatch(a store.Action)
}

// TaskFunc is the body of a task. Actions must go through d so a superseded task cannot reach the store.
type TaskFunc func(ctx context.Context, d Dispatcher) error

// Task kinds
const (
	TASK_NEARBY            = "venues/nearby"
	TASK_RECOMMENDED       = "venues/recommended"
	TASK_SEARCH            = "venues/search"
	TASK_SELECT_VENUE      = "venues/select"
	TASK_LOCATION          = "location"
	TASK_FETCH_BUCKET_LIST = "bucketList/fetch"
	TASK_BUCKET_LIST_ITEM  = "bucketList/item/"
	TASK_LOGIN             = "auth/login"
	TASK_LOGOUT            = "auth/logout"
)

// Task is one running intent.
type Task struct {
	id     string
	kind   string
	runner *TaskRunner
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func (t *Task) ID() string   { return t.id }
func (t *Task) Kind() string { return t.kind }

// Cancel aborts the task's context. Actions already dispatched stay.
func (t *Task) Cancel() { t.cancel() }

func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task body returned and reports its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Superseded reports whether a newer task of the same kind was triggered.
func (t *Task) Superseded() bool {
	t.runner.mu.Lock()
	defer t.runner.mu.Unlock()
	cur, ok := t.runner.current[t.kind]
	return ok && cur != t
}

// Dispatch forwards a to the store unless a newer task of the same kind was triggered.
func (t *Task) Dispatch(a store.Action) {
	r := t.runner
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current[t.kind] != t {
		r.logger.Debug("dropping action from superseded task",
			zap.String("task_id", t.id), zap.String("kind", t.kind), zap.String("action", a.ActionType()))
		return
	}
	r.dispatcher.Dispatch(a)
}

// TaskRunner runs tasks with latest-wins semantics per kind: triggering a task cancels the previous
// task of that kind and drops anything it dispatches afterwards.
type TaskRunner struct {
	dispatcher Dispatcher
	logger     *zap.Logger
	base       context.Context
	stop       context.CancelFunc
	wg         sync.WaitGroup

	mu      sync.Mutex
	current map[string]*Task
}

func NewTaskRunner(dispatcher Dispatcher, logger *zap.Logger) *TaskRunner {
	base, stop := context.WithCancel(context.Background())
	return &TaskRunner{
		dispatcher: dispatcher,
		logger:     logger.Named("TaskRunner"),
		base:       base,
		stop:       stop,
		current:    make(map[string]*Task),
	}
}

// Run starts fn as the current task of kind.
func (r *TaskRunner) Run(kind string, fn TaskFunc) *Task {
	ctx, cancel := context.WithCancel(r.base)
	t := &Task{
		id:     uuid.NewString(),
		kind:   kind,
		runner: r,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	r.mu.Lock()
	prev := r.current[kind]
	r.current[kind] = t
	r.wg.Add(1)
	r.mu.Unlock()

	if prev != nil {
		r.logger.Debug("superseding task", zap.String("kind", kind), zap.String("previous", prev.id), zap.String("task_id", t.id))
		prev.cancel()
	}

	go func() {
		defer r.wg.Done()
		t.err = fn(ctx, t)
		cancel()

		r.mu.Lock()
		if r.current[kind] == t {
			delete(r.current, kind)
		}
		r.mu.Unlock()

		if t.err != nil {
			r.logger.Debug("task finished with error", zap.String("kind", kind), zap.String("task_id", t.id), zap.Error(t.err))
		}
		close(t.done)
	}()
	return t
}

// Wait blocks until every started task has returned.
func (r *TaskRunner) Wait() {
	r.wg.Wait()
}

// Shutdown cancels all running tasks and waits for them.
func (r *TaskRunner) Shutdown() {
	r.stop()
	r.wg.Wait()
}
