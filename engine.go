// engine.go - wires PathFilter, EntryProbe, the aggregator, the collector
// and the work-stealing pool together into one traversal
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
	"path"
	"sync/atomic"
)

// opKind selects which of the three public operations an engine serves.
// It decides whether entries are buffered into the collector, and whether
// a stat(2) call is needed at all - see needMeta/needExt below.
type opKind int

const (
	opCount opKind = iota
	opWalk
	opScandir
)

// engineConfig is the immutable configuration an engine runs with. It is
// built once by the operation facade (Count/Walk/Scandir) from the
// validated Config and handed to the engine when the task is created.
type engineConfig struct {
	root        string
	op          opKind
	returnType  ReturnType
	filter      *PathFilter
	concurrency int
}

// engine runs one traversal. It owns the aggregator (always populated,
// regardless of operation, since Statistics() is available on every
// TaskHandle) and, for Walk/Scandir, the collector that buffers the
// entries or TOCs the caller consumes via Results/Collect/Iter.
type engine struct {
	cfg  engineConfig
	agg  *aggregator
	col  *collector
	stop atomic.Bool
}

func newEngine(cfg engineConfig) *engine {
	return &engine{
		cfg: cfg,
		agg: newAggregator(),
		col: newCollector(),
	}
}

// needMeta/needExt decide how many stat(2) calls EntryProbe issues.
// Count/ReturnBase and Walk only ever need the Kind bit the directory
// listing already carries; Scandir always needs DirEntryBase's times, and
// either operation needs the platform superset only under ReturnExt.
func (c engineConfig) needMeta() bool {
	return c.op == opScandir || (c.op == opCount && c.returnType == ReturnExt)
}

func (c engineConfig) needExt() bool {
	return c.returnType == ReturnExt
}

// walkExt reports whether a Walk traversal should emit the full six-field
// Toc (Root/Dirs/Files/Symlinks/Other/Errors) or the three-field shape
// (Root/Dirs/Files), with the rest zeroed on the emitted record. Either
// way, every kind is still folded into the Aggregator's Statistics.
func (c engineConfig) walkExt() bool {
	return c.op == opWalk && c.returnType == ReturnExt
}

// Stop requests cooperative cancellation; workers observe it at directory
// boundaries and unwind without visiting further subtrees.
func (e *engine) Stop() {
	e.stop.Store(true)
}

// Run drives the traversal to completion (or until Stop is called) and
// closes the collector so any blocked Iter() callers unblock.
func (e *engine) Run() {
	pool := newWorkerPool(e.cfg.concurrency, &e.stop, e.processDir)
	pool.Run(job{dir: e.cfg.root, rel: ""})
	e.col.Close()
}

// processDir lists one directory, classifies each child, updates the
// aggregator, optionally buffers a result item or a Toc, and pushes a job
// for every subdirectory that passes the filter.
func (e *engine) processDir(j job, push func(job)) {
	if !e.cfg.filter.AllowDir(j.rel) {
		return
	}

	children, err := readDirChildren(j.dir)
	if err != nil {
		e.agg.addError(j.dir, err)
		return
	}

	var toc Toc
	if e.cfg.op == opWalk {
		toc.Root = j.rel
	}

	needMeta := e.cfg.needMeta()
	needExt := e.cfg.needExt()

	for _, child := range children {
		absPath := path.Join(j.dir, child.name)
		relPath := child.name
		if j.rel != "" {
			relPath = path.Join(j.rel, child.name)
		}

		res, err := probeEntry(absPath, relPath, child, needMeta, needExt)
		if err != nil {
			e.agg.addError(absPath, err)
			if e.cfg.op == opWalk {
				toc.Errors = append(toc.Errors, entryError(absPath, err))
			}
			continue
		}

		switch res.kind {
		case KindDir:
			if e.cfg.filter.AllowDir(relPath) {
				e.agg.addDir()
				if e.cfg.op == opWalk {
					toc.Dirs = append(toc.Dirs, child.name)
				}
				push(job{dir: absPath, rel: relPath})
				e.emitEntry(res, relPath)
			}

		case KindSymlink:
			if !e.cfg.filter.AllowFile(child.name) {
				continue
			}
			e.agg.addSymlink()
			if e.cfg.op == opWalk {
				toc.Symlinks = append(toc.Symlinks, child.name)
			}
			e.emitEntry(res, relPath)

		case KindFile:
			if !e.cfg.filter.AllowFile(child.name) {
				continue
			}
			e.agg.addFile(res.ext)
			if e.cfg.op == opWalk {
				toc.Files = append(toc.Files, child.name)
			}
			e.emitEntry(res, relPath)

		default: // KindOther: device, fifo, socket, ...
			if !e.cfg.filter.AllowFile(child.name) {
				continue
			}
			e.agg.addOther(res.kind)
			if e.cfg.op == opWalk {
				toc.Other = append(toc.Other, child.name)
			}
			e.emitEntry(res, relPath)
		}
	}

	if e.cfg.op == opWalk {
		if !e.cfg.walkExt() {
			toc.Symlinks = nil
			toc.Other = nil
			toc.Errors = nil
		}
		e.col.Add(toc)
	}
}

// emitEntry buffers a DirEntryBase/DirEntryExt result for Scandir. Count
// never collects entries (its only output is Statistics); Walk collects
// Toc values instead, added once per directory above.
func (e *engine) emitEntry(res probeResult, relPath string) {
	if e.cfg.op != opScandir {
		return
	}
	if res.ext != nil {
		e.col.Add(*res.ext)
		return
	}
	base := res.base
	base.Path = relPath
	base.IsDir = res.kind == KindDir
	base.IsSymlink = res.kind == KindSymlink
	base.IsFile = res.kind == KindFile
	e.col.Add(base)
}
