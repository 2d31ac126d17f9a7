// collector.go - buffers results produced by the worker pool for
// consumption either as a batch snapshot or as a blocking iterator
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

// collector is a thread-safe, growable buffer of result items (one of
// DirEntryBase, DirEntryExt or Toc depending on the operation's
// ReturnType). Workers Add() as they discover entries; the caller either
// copies the whole buffer at once (TaskHandle.Results/Collect, via
// Snapshot) or pulls items one at a time as they arrive (TaskHandle.Iter),
// via a sync.Cond rather than a channel so Snapshot and Next can share the
// same backing slice without picking a fixed channel capacity up front.
// Neither removes items: Snapshot always returns everything added so far,
// including items Next has already handed out.
type collector struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []any
	cursor int // index of the next item Next() hasn't handed out yet
	closed bool
}

func newCollector() *collector {
	c := &collector{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Add appends one result item and wakes any goroutine blocked in Next.
func (c *collector) Add(item any) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	c.cond.Broadcast()
}

// Close marks the collector as finished; pending Next() calls return
// (nil, false) once the backlog is exhausted instead of blocking forever.
func (c *collector) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cond.Broadcast()
}

// Len reports how many items have been collected so far.
func (c *collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Snapshot returns every item collected so far without consuming the
// iterator cursor, used by Results()/Collect() for a point-in-time copy.
func (c *collector) Snapshot() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, len(c.items))
	copy(out, c.items)
	return out
}

// Next blocks until an item is available or the collector is closed. It
// returns (item, true) on success, and (nil, false) once the collector is
// closed and every item has been handed out.
func (c *collector) Next() (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.cursor >= len(c.items) {
		if c.closed {
			return nil, false
		}
		c.cond.Wait()
	}
	item := c.items[c.cursor]
	c.cursor++
	return item, true
}
