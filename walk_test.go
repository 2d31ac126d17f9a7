// walk_test.go - Walk operation
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

func TestWalkEmitsOneTocPerDir(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 2, 2, 3, 32)

	task, err := Walk(string(dir))
	assert(err == nil, "Walk: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	tocs := task.Collect()
	// root + 2 subdirs = 3 Tocs
	assert(len(tocs) == 3, "expected 3 Tocs, got %d", len(tocs))

	for _, item := range tocs {
		toc, ok := item.(Toc)
		assert(ok, "item should be a Toc, got %T", item)
		assert(len(toc.Files) == 3, "dir %q: want 3 files, got %d", toc.Root, len(toc.Files))
	}
}

func TestWalkRejectsReturnWalk(t *testing.T) {
	assert := newAsserter(t)
	_, err := Walk(t.TempDir(), WithReturnType(ReturnWalk))
	assert(err != nil, "Walk should reject ReturnWalk")
}

func TestWalkBaseOmitsSymlinksOtherAndErrors(t *testing.T) {
	assert := newAsserter(t)

	dir := rootdir(t.TempDir())
	assert(dir.mkfile("real.txt", 8) == nil, "mkfile real.txt")
	assert(dir.symlink("real.txt", "link.txt") == nil, "symlink link.txt")

	task, err := Walk(string(dir))
	assert(err == nil, "Walk: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	tocs := task.Collect()
	assert(len(tocs) == 1, "expected 1 Toc, got %d", len(tocs))

	toc := tocs[0].(Toc)
	assert(len(toc.Files) == 1, "want 1 file, got %d", len(toc.Files))
	assert(len(toc.Symlinks) == 0, "ReturnBase must omit Symlinks, got %v", toc.Symlinks)
	assert(len(toc.Other) == 0, "ReturnBase must omit Other, got %v", toc.Other)
	assert(len(toc.Errors) == 0, "ReturnBase must omit Errors, got %v", toc.Errors)

	// still folded into the global aggregate regardless of Toc shape.
	stats := task.Statistics()
	assert(stats.Slinks == 1, "symlink should still be counted in Statistics, got %d", stats.Slinks)
}

func TestWalkExtIncludesSymlinks(t *testing.T) {
	assert := newAsserter(t)

	dir := rootdir(t.TempDir())
	assert(dir.mkfile("real.txt", 8) == nil, "mkfile real.txt")
	assert(dir.symlink("real.txt", "link.txt") == nil, "symlink link.txt")

	task, err := Walk(string(dir), WithReturnType(ReturnExt))
	assert(err == nil, "Walk: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	tocs := task.Collect()
	assert(len(tocs) == 1, "expected 1 Toc, got %d", len(tocs))

	toc := tocs[0].(Toc)
	assert(len(toc.Symlinks) == 1, "ReturnExt must include Symlinks, got %v", toc.Symlinks)
	assert(toc.Symlinks[0] == "link.txt", "expected link.txt, got %s", toc.Symlinks[0])
}

func TestWalkTocRootIsRelative(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 1, 1, 1, 16)
	task, err := Walk(string(dir))
	assert(err == nil, "Walk: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	tocs := task.Collect()
	for _, item := range tocs {
		toc := item.(Toc)
		assert(toc.Root != string(dir), "Root field should be relative, not absolute")
	}
}
