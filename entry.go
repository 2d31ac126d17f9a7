// entry.go - EntryProbe: classify a directory child with at most one stat
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

import "fmt"

// probeResult is what EntryProbe hands back to a worker: the entry's
// kind, and - when the caller asked for it - its metadata. Ext is nil
// unless needExt was requested.
type probeResult struct {
	kind Kind
	base DirEntryBase
	ext  *DirEntryExt
}

// probeEntry classifies one directory child. child.typeKnown lets us skip
// the stat(2) call entirely when the operation doesn't need metadata
// (Count/Base and Walk never do - they only need Kind). needMeta is set
// whenever the caller needs DirEntryBase fields (times); needExt additionally
// asks for the platform superset (size/ino/dev/... and drives hardlink
// dedup upstream in the Aggregator).
//
// This issues at most one stat call per entry.
func probeEntry(absPath, relPath string, child dirChild, needMeta, needExt bool) (probeResult, error) {
	if !needMeta && child.typeKnown {
		return probeResult{kind: kindFromMode(child.mode)}, nil
	}

	kind, ext, err := platformStat(absPath)
	if err != nil {
		return probeResult{}, fmt.Errorf("stat %s: %w", absPath, err)
	}

	ext.Path = relPath
	res := probeResult{kind: kind, base: ext.DirEntryBase}
	if needExt {
		res.ext = &ext
	}
	return res, nil
}
