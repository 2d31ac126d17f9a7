// types.go - public data types shared by Count, Walk and Scandir
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

// Kind classifies a directory entry.
type Kind uint

const (
	KindFile Kind = 1 << iota
	KindDir
	KindSymlink
	KindOther // fifo, socket, device, or anything else
)

// String is a human readable name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDir:
		return "Dir"
	case KindSymlink:
		return "Symlink"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ReturnType selects the shape and depth of metadata an operation emits.
// Each operation only accepts a subset - see Count, Walk and Scandir.
type ReturnType int

const (
	// ReturnBase requests the portable subset of fields.
	ReturnBase ReturnType = iota

	// ReturnExt requests the full platform metadata superset (and, for
	// Count, enables size/usage/hardlink accounting).
	ReturnExt

	// ReturnWalk names the Toc-shaped operation itself rather than a
	// metadata depth; none of Count, Walk or Scandir accept it as a
	// ReturnType value and all three constructors reject it with an
	// error, before any task exists to Start().
	ReturnWalk
)

// String names a ReturnType for diagnostics.
func (r ReturnType) String() string {
	switch r {
	case ReturnBase:
		return "base"
	case ReturnExt:
		return "ext"
	case ReturnWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// FilterSpec holds the glob lists that decide which directories are
// descended and which files are emitted. An empty list means "no
// restriction". The matching rules are in PathFilter.
type FilterSpec struct {
	DirInclude  []string
	DirExclude  []string
	FileInclude []string
	FileExclude []string
}

// DirEntryBase is the portable subset of a file system entry's metadata.
// Path is the full path from the traversal root; times are seconds since
// the Unix epoch as fractional doubles.
type DirEntryBase struct {
	Path      string
	IsSymlink bool
	IsDir     bool
	IsFile    bool
	Ctime     float64
	Mtime     float64
	Atime     float64
}

// DirEntryExt is the platform metadata superset. Fields the host platform
// doesn't support are left zero.
type DirEntryExt struct {
	DirEntryBase

	Mode    uint32
	Ino     uint64
	Dev     uint64
	Nlink   uint64
	Size    int64
	Blksize int64
	Blocks  int64
	Uid     uint32
	Gid     uint32
	Rdev    uint64
}

// Toc (table of contents) groups one directory's children by kind. It is
// emitted once per directory that Walk successfully opened.
type Toc struct {
	Root     string
	Dirs     []string
	Files    []string
	Symlinks []string
	Other    []string
	Errors   []string
}

// Statistics is the aggregate count/size/usage/error record produced by a
// traversal. Size is the sum of st_size over regular files; Usage is the
// sum of allocated disk blocks (blocks*512, or a platform equivalent).
// Hlinks counts files whose link count was >1 and whose (dev,ino) pair was
// observed more than once under the root.
type Statistics struct {
	Dirs    uint64
	Files   uint64
	Slinks  uint64
	Hlinks  uint64
	Devices uint64
	Pipes   uint64
	Size    uint64
	Usage   uint64
	Errors  []string

	// Duration is seconds elapsed between the task's creation (by Count,
	// Walk or Scandir) and the moment this snapshot was taken. It is not
	// frozen when the task Finishes; later snapshots keep growing.
	Duration float64
}

// AsDict returns a flat map of the fields relevant to value comparison -
// handy for tests and for callers that want a generic representation
// without depending on the Statistics type.
func (s Statistics) AsDict() map[string]any {
	return map[string]any{
		"dirs":    s.Dirs,
		"files":   s.Files,
		"slinks":  s.Slinks,
		"hlinks":  s.Hlinks,
		"devices": s.Devices,
		"pipes":   s.Pipes,
		"size":    s.Size,
		"usage":   s.Usage,
		"errors":  len(s.Errors),
	}
}
