// walk_op.go - Walk: emit one Toc per directory visited
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

// Walk walks the tree at root and emits one Toc per directory it
// successfully opens, grouping that directory's immediate children by
// kind. Like Count with ReturnBase, Walk never calls stat(2) - a child's
// Kind comes entirely from the directory listing's own type tags, falling
// back to lstat only when the file system doesn't supply one.
//
// ReturnBase (the default) emits only Root/Dirs/Files on each Toc;
// ReturnExt additionally emits Symlinks/Other/Errors. Either way every
// kind is still folded into Statistics. ReturnWalk is rejected: it names
// the Toc-shaped operation itself, not a metadata depth to pick.
//
// Walk returns an unstarted TaskHandle; call Start to begin traversal.
func Walk(root string, opts ...Option) (*TaskHandle, error) {
	cfg := buildConfig(opts)
	if cfg.ReturnType == ReturnWalk {
		return nil, &Error{Op: "Walk", Path: root, Err: ErrInvalidReturnType}
	}
	return newTask(opWalk, root, cfg)
}
