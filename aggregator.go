// aggregator.go - concurrent accumulation of Statistics across workers
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

import (
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// aggregator collects Statistics from many concurrent workers. Counters
// are mutex-protected rather than atomic because Errors is a slice and we
// want a single consistent snapshot under Snapshot(). seen dedups hardlinks
// by (dev,ino), keyed as "dev:ino" since only regular-file hardlinks are
// tracked here, not symlink loops.
type aggregator struct {
	mu    sync.Mutex
	stats Statistics
	start time.Time

	seen *xsync.MapOf[string, struct{}]
}

func newAggregator() *aggregator {
	return &aggregator{
		start: time.Now(),
		seen:  xsync.NewMapOf[string, struct{}](),
	}
}

func (a *aggregator) addDir() {
	a.mu.Lock()
	a.stats.Dirs++
	a.mu.Unlock()
}

func (a *aggregator) addSymlink() {
	a.mu.Lock()
	a.stats.Slinks++
	a.mu.Unlock()
}

func (a *aggregator) addOther(kind Kind) {
	a.mu.Lock()
	switch kind {
	case KindOther:
		a.stats.Devices++
	}
	a.mu.Unlock()
}

// addFile records a regular file. When ext is non-nil (ReturnExt mode) it
// also folds in size/usage and performs the hardlink dedup: a file's size
// and usage are only counted once per distinct (dev,ino), and a file is
// counted as a hardlink once its link count is seen a second time.
func (a *aggregator) addFile(ext *DirEntryExt) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.Files++
	if ext == nil {
		return
	}

	key := fmt.Sprintf("%d:%d", ext.Dev, ext.Ino)
	_, dup := a.seen.LoadOrStore(key, struct{}{})
	if dup {
		if ext.Nlink > 1 {
			a.stats.Hlinks++
		}
		return
	}

	a.stats.Size += uint64(ext.Size)
	a.stats.Usage += blockUsage(ext)
}

func (a *aggregator) addError(path string, err error) {
	a.mu.Lock()
	a.stats.Errors = append(a.stats.Errors, entryError(path, err))
	a.mu.Unlock()
}

// snapshot returns a copy of the current Statistics with Duration filled
// in relative to the aggregator's start time.
func (a *aggregator) snapshot() Statistics {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.stats
	s.Errors = append([]string(nil), a.stats.Errors...)
	s.Duration = time.Since(a.start).Seconds()
	return s
}

// blockUsage estimates on-disk allocation. Blocks is in 512-byte units on
// POSIX platforms (st_blocks); when Blocks is 0 (not determined, or no
// blocks allocated) we fall back to the file size itself.
func blockUsage(ext *DirEntryExt) uint64 {
	if ext.Blocks > 0 {
		return uint64(ext.Blocks) * 512
	}
	if ext.Size > 0 {
		return uint64(ext.Size)
	}
	return 0
}
