// filter.go - glob based include/exclude filtering for dirs and files
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

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter is the compiled form of a FilterSpec. It decides whether a
// directory (by its path relative to the traversal root) should be
// descended, and whether a file (by basename) should be emitted. Matching
// always uses forward slashes, regardless of GOOS, per FilterSpec's
// contract. An empty include list means "accept all"; when a path matches
// both an include and an exclude pattern, exclude wins.
type PathFilter struct {
	spec FilterSpec
}

// NewPathFilter compiles a FilterSpec. Compilation here just retains the
// pattern lists; doublestar.Match validates patterns lazily on each call,
// which keeps this cheap for the (common) case where a task never
// exercises every pattern.
func NewPathFilter(spec FilterSpec) *PathFilter {
	return &PathFilter{spec: spec}
}

// AllowDir returns true if the directory at relPath (relative to the
// traversal root, forward-slash separated, "" for the root itself) should
// be descended. The root is never filtered out.
func (f *PathFilter) AllowDir(relPath string) bool {
	if relPath == "" || relPath == "." {
		return true
	}
	return allow(relPath, f.spec.DirInclude, f.spec.DirExclude)
}

// AllowFile returns true if a file with the given basename should be
// emitted and counted.
func (f *PathFilter) AllowFile(base string) bool {
	return allow(base, f.spec.FileInclude, f.spec.FileExclude)
}

func allow(name string, include, exclude []string) bool {
	if matchAny(name, exclude) {
		return false
	}
	if len(include) == 0 {
		return true
	}
	return matchAny(name, include)
}

func matchAny(name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
		// also allow a bare glob like "*.bin" to match just the
		// basename of a longer relative dir path, so a pattern like
		// "node_modules" excludes it at any nesting depth.
		if ok, err := doublestar.Match(pat, path.Base(name)); err == nil && ok {
			return true
		}
	}
	return false
}
