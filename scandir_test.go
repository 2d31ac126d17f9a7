// scandir_test.go - Scandir operation
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

func TestScandirBaseEmitsEveryEntry(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 2, 2, 2, 32)

	task, err := Scandir(string(dir))
	assert(err == nil, "Scandir: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	entries := task.Collect()
	// 2 subdirs + 2 files at root + 2 files per subdir = 2 + 2 + 2*2 = 8
	assert(len(entries) == 8, "expected 8 entries, got %d", len(entries))

	for _, item := range entries {
		base, ok := item.(DirEntryBase)
		assert(ok, "entry should be a DirEntryBase, got %T", item)
		assert(base.Path != "", "entry path must not be empty")
	}
}

func TestScandirExtPopulatesSize(t *testing.T) {
	assert := newAsserter(t)

	dir := buildFixtureTree(t, 0, 0, 2, 256)

	task, err := Scandir(string(dir), WithReturnType(ReturnExt))
	assert(err == nil, "Scandir: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	entries := task.Collect()
	assert(len(entries) == 2, "expected 2 entries, got %d", len(entries))

	for _, item := range entries {
		ext, ok := item.(DirEntryExt)
		assert(ok, "entry should be a DirEntryExt, got %T", item)
		assert(ext.Size == 256, "size: got %d want 256", ext.Size)
	}
}

func TestScandirRejectsReturnWalk(t *testing.T) {
	assert := newAsserter(t)

	_, err := Scandir(t.TempDir(), WithReturnType(ReturnWalk))
	assert(err != nil, "Scandir should reject ReturnWalk")
}

func TestScandirFilterHidesFiles(t *testing.T) {
	assert := newAsserter(t)

	dir := rootdir(t.TempDir())
	assert(dir.mkfile("keep.txt", 10) == nil, "mkfile keep.txt")
	assert(dir.mkfile("skip.bin", 10) == nil, "mkfile skip.bin")

	task, err := Scandir(string(dir), WithFilter(FilterSpec{
		FileInclude: []string{"*.txt"},
	}))
	assert(err == nil, "Scandir: unexpected error: %v", err)
	assert(task.Start() == nil, "Start should succeed")

	entries := task.Collect()
	assert(len(entries) == 1, "expected 1 entry, got %d", len(entries))
	base := entries[0].(DirEntryBase)
	assert(base.Path == "keep.txt", "expected keep.txt, got %s", base.Path)
}
