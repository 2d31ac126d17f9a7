// count_test.go - Count operation
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
	"path/filepath"
	"testing"
)

func TestCountBaseFixture(t *testing.T) {
	assert := newAsserter(t)

	// 3 dirs per level, 2 levels of subdirs, 4 files per dir (root included).
	dir := buildFixtureTree(t, 3, 3, 4, 128)

	task, err := Count(string(dir))
	assert(err == nil, "Count: unexpected error: %v", err)

	assert(task.Start() == nil, "Start should succeed on a fresh task")
	task.Join()

	stats := task.Statistics()
	// root(4) + 3 subdirs * 4 files each + 3*3 subsubdirs * 4 files each
	wantFiles := uint64(4 + 3*4 + 3*3*4)
	wantDirs := uint64(3 + 3*3)

	assert(stats.Files == wantFiles, "files: got %d want %d", stats.Files, wantFiles)
	assert(stats.Dirs == wantDirs, "dirs: got %d want %d", stats.Dirs, wantDirs)
	assert(len(stats.Errors) == 0, "unexpected errors: %v", stats.Errors)
	assert(!task.HasResults(), "Count should never buffer entries")
}

func TestCountExtSizeAndUsage(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 2, 2, 3, 100)

	task, err := Count(string(dir), WithReturnType(ReturnExt))
	assert(err == nil, "Count: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")
	task.Join()

	stats := task.Statistics()
	wantFiles := uint64(3 + 2*3)
	assert(stats.Files == wantFiles, "files: got %d want %d", stats.Files, wantFiles)
	assert(stats.Size == wantFiles*100, "size: got %d want %d", stats.Size, wantFiles*100)
	assert(stats.Usage > 0, "usage should be accounted under ReturnExt")
}

func TestCountRejectsReturnWalk(t *testing.T) {
	assert := newAsserter(t)

	_, err := Count(t.TempDir(), WithReturnType(ReturnWalk))
	assert(err != nil, "Count should reject ReturnWalk")
}

func TestCountRejectsUnreachableRoot(t *testing.T) {
	assert := newAsserter(t)

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := Count(missing)
	assert(err != nil, "Count should reject an unreachable root")

	_, ok := err.(*Error)
	assert(ok, "error should be a *Error, got %T", err)
}

func TestCountFilterExcludesSubtree(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 2, 2, 2, 64)

	task, err := Count(string(dir), WithFilter(FilterSpec{
		DirExclude: []string{"dir0"},
	}))
	assert(err == nil, "Count: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")
	task.Join()

	stats := task.Statistics()
	// tree is root + {dir0, dir1}, 2 files each; excluding dir0 leaves
	// only root and dir1.
	wantFiles := uint64(2 + 2)
	assert(stats.Files == wantFiles, "files: got %d want %d", stats.Files, wantFiles)
}
