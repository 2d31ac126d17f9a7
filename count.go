// count.go - Count: tally directories/files/symlinks/size/usage
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

// Count walks the tree at root and produces only Statistics - no entries
// are buffered. With ReturnBase (the default) it classifies entries using
// only the directory listing's own type tags, never calling stat(2);
// ReturnExt additionally stats every entry to populate Size/Usage/Hlinks.
// ReturnWalk is rejected: Count has no per-directory TOC to emit.
//
// Count returns an unstarted TaskHandle; call Start to begin traversal.
func Count(root string, opts ...Option) (*TaskHandle, error) {
	cfg := buildConfig(opts)
	if cfg.ReturnType == ReturnWalk {
		return nil, &Error{Op: "Count", Path: root, Err: ErrInvalidReturnType}
	}
	return newTask(opCount, root, cfg)
}
