// task.go - TaskHandle: the Fresh -> Running -> (Stopping ->) Finished
// lifecycle shared by Count, Walk and Scandir
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package scandir

import "sync"

// taskState is TaskHandle's lifecycle state.
type taskState int

const (
	stateFresh taskState = iota
	stateRunning
	stateStopping
	stateFinished
)

// TaskHandle is the handle returned by Count, Walk and Scandir. A task
// starts Fresh, moves to Running on Start, optionally to Stopping on
// Stop, and reaches Finished once the traversal goroutine returns. All
// methods are safe to call from multiple goroutines.
type TaskHandle struct {
	mu    sync.Mutex
	state taskState
	done  chan struct{}

	eng *engine
}

func newTaskHandle(eng *engine) *TaskHandle {
	return &TaskHandle{
		state: stateFresh,
		done:  make(chan struct{}),
		eng:   eng,
	}
}

// Start launches the traversal in a background goroutine. It returns
// ErrNotFresh if the task has already been started.
func (t *TaskHandle) Start() error {
	t.mu.Lock()
	if t.state != stateFresh {
		t.mu.Unlock()
		return ErrNotFresh
	}
	t.state = stateRunning
	t.mu.Unlock()

	go func() {
		t.eng.Run()
		t.mu.Lock()
		t.state = stateFinished
		t.mu.Unlock()
		close(t.done)
	}()
	return nil
}

// Busy reports whether the task is still Running or Stopping.
func (t *TaskHandle) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == stateRunning || t.state == stateStopping
}

// Stop requests cooperative cancellation. Workers notice the request at
// the next directory boundary; the task only reaches Finished once they
// have actually unwound, so callers that need that guarantee should
// follow Stop with Join.
func (t *TaskHandle) Stop() {
	t.mu.Lock()
	if t.state == stateRunning {
		t.state = stateStopping
	}
	t.mu.Unlock()
	t.eng.Stop()
}

// Join blocks until the task reaches Finished.
func (t *TaskHandle) Join() {
	<-t.done
}

// Results returns a point-in-time snapshot of the entries (or Tocs)
// collected so far. It does not block - call it while Busy() to monitor
// progress, or after Join() for the final set.
func (t *TaskHandle) Results() []any {
	return t.eng.col.Snapshot()
}

// Collect blocks until the task finishes and then returns every entry (or
// Toc) it produced.
func (t *TaskHandle) Collect() []any {
	t.Join()
	return t.Results()
}

// Statistics returns a point-in-time snapshot of the running totals.
// Duration is measured up to the moment of the call, both while the task
// is Busy and after it has Finished.
func (t *TaskHandle) Statistics() Statistics {
	return t.eng.agg.snapshot()
}

// HasResults reports whether any entry (or Toc) has been collected yet.
func (t *TaskHandle) HasResults() bool {
	return t.eng.col.Len() > 0
}

// HasErrors reports whether any non-fatal per-entry error has been
// recorded so far.
func (t *TaskHandle) HasErrors() bool {
	return len(t.Statistics().Errors) > 0
}

// AsDict returns the current Statistics as a generic map, handy for
// callers that want a dependency-free snapshot (e.g. for logging).
func (t *TaskHandle) AsDict() map[string]any {
	return t.Statistics().AsDict()
}

// Iter returns a pull function for streaming results as they arrive,
// rather than waiting for Collect. Each call blocks until the next entry
// is ready, the task finishes, or the buffered backlog is exhausted; the
// second return value is false once there is nothing left to deliver.
func (t *TaskHandle) Iter() func() (any, bool) {
	return t.eng.col.Next
}

// Scoped starts the task, runs fn, and guarantees Stop+Join on the way
// out - the equivalent of a context-managed "with task:" block, for
// callers who want a started task released deterministically regardless
// of how fn returns.
func Scoped(t *TaskHandle, fn func(*TaskHandle) error) error {
	if err := t.Start(); err != nil {
		return err
	}
	defer func() {
		t.Stop()
		t.Join()
	}()
	return fn(t)
}
