// dirent.go - cheap directory listing with OS-supplied type tags
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
	"io/fs"

	"github.com/karrick/godirwalk"
)

// dirChild is one entry returned by reading a directory: a basename and,
// when the OS handed it to us for free, the entry's type.
type dirChild struct {
	name        string
	typeKnown   bool
	mode        fs.FileMode // valid (Dir/Symlink/Device/... bits) iff typeKnown
}

// readDirChildren lists the immediate children of dir using
// godirwalk.ReadDirents, which performs a single getdents(2)-family
// syscall and returns the OS's own idea of each entry's type where the
// underlying file system supplies one. Entries for which the type is not
// known (fs.ModeIrregular) are flagged so EntryProbe falls back to lstat.
func readDirChildren(dir string) ([]dirChild, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, err
	}

	out := make([]dirChild, 0, len(dirents))
	for _, de := range dirents {
		mt := de.ModeType()
		out = append(out, dirChild{
			name:      de.Name(),
			typeKnown: mt&fs.ModeIrregular == 0,
			mode:      mt,
		})
	}
	return out, nil
}

// kindFromMode maps the os.ModeType bits godirwalk/os report into our Kind.
func kindFromMode(m fs.FileMode) Kind {
	switch {
	case m&fs.ModeSymlink != 0:
		return KindSymlink
	case m&fs.ModeDir != 0:
		return KindDir
	case m&(fs.ModeDevice|fs.ModeCharDevice|fs.ModeNamedPipe|fs.ModeSocket|fs.ModeIrregular) != 0:
		return KindOther
	default:
		return KindFile
	}
}
