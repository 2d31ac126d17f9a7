// task_test.go - TaskHandle lifecycle
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

import "testing"

func TestTaskStartTwiceFails(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 1, 1, 1, 16)
	task, err := Count(string(dir))
	assert(err == nil, "Count: unexpected error: %v", err)

	assert(task.Start() == nil, "first Start should succeed")
	task.Join()

	err = task.Start()
	assert(err == ErrNotFresh, "second Start should return ErrNotFresh, got %v", err)
}

func TestTaskBusyReflectsLifecycle(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 2, 3, 20, 64)
	task, err := Count(string(dir))
	assert(err == nil, "Count: unexpected error: %v", err)

	assert(!task.Busy(), "a fresh task should not be busy")
	assert(task.Start() == nil, "Start should succeed")
	task.Join()
	assert(!task.Busy(), "a finished task should not be busy")
}

func TestTaskStopUnwindsPromptly(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 4, 4, 10, 64)
	task, err := Count(string(dir))
	assert(err == nil, "Count: unexpected error: %v", err)

	assert(task.Start() == nil, "Start should succeed")
	task.Stop()
	task.Join()
	assert(!task.Busy(), "task should have finished after Stop+Join")
}

func TestTaskIterDeliversAllEntries(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 2, 2, 2, 16)
	task, err := Scandir(string(dir))
	assert(err == nil, "Scandir: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	next := task.Iter()
	count := 0
	for {
		_, ok := next()
		if !ok {
			break
		}
		count++
	}
	task.Join()
	assert(count == len(task.Results()), "Iter should deliver every buffered entry (%d vs %d)", count, len(task.Results()))
}

func TestScopedStopsAndJoins(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 1, 1, 3, 16)
	task, err := Count(string(dir))
	assert(err == nil, "Count: unexpected error: %v", err)

	var statsSeen bool
	err = Scoped(task, func(th *TaskHandle) error {
		th.Join()
		statsSeen = th.Statistics().Files > 0
		return nil
	})
	assert(err == nil, "Scoped: unexpected error: %v", err)
	assert(statsSeen, "Scoped should observe results before returning")
	assert(!task.Busy(), "task should be finished after Scoped returns")
}
