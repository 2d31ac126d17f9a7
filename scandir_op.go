// scandir_op.go - Scandir: emit one entry per file system object visited
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

// Scandir walks the tree at root and emits one entry per directory, file,
// symlink or other object visited - a DirEntryBase under ReturnBase (the
// default), or the platform metadata superset as a DirEntryExt under
// ReturnExt. Unlike Count and Walk, Scandir always calls stat(2) on every
// entry, since even DirEntryBase carries mtime/ctime/atime that a plain
// directory listing cannot supply.
//
// ReturnWalk is rejected: Scandir has no per-directory TOC to emit.
//
// Scandir returns an unstarted TaskHandle; call Start to begin traversal.
func Scandir(root string, opts ...Option) (*TaskHandle, error) {
	cfg := buildConfig(opts)
	if cfg.ReturnType == ReturnWalk {
		return nil, &Error{Op: "Scandir", Path: root, Err: ErrInvalidReturnType}
	}
	return newTask(opScandir, root, cfg)
}
