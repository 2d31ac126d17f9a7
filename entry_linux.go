// entry_linux.go - Stat_t to DirEntryExt for linux
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

//go:build linux

package scandir

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func platformStat(absPath string) (Kind, DirEntryExt, error) {
	var st unix.Stat_t
	if err := unix.Lstat(absPath, &st); err != nil {
		return 0, DirEntryExt{}, err
	}

	mode := fs.FileMode(st.Mode & 0777)
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	}

	kind := kindFromMode(mode)

	ext := DirEntryExt{
		DirEntryBase: DirEntryBase{
			IsSymlink: kind == KindSymlink,
			IsDir:     kind == KindDir,
			IsFile:    kind == KindFile,
			Ctime:     tsToFloat(st.Ctim),
			Mtime:     tsToFloat(st.Mtim),
			Atime:     tsToFloat(st.Atim),
		},
		Mode:    uint32(mode),
		Ino:     st.Ino,
		Dev:     uint64(st.Dev),
		Rdev:    uint64(st.Rdev),
		Nlink:   uint64(st.Nlink),
		Size:    st.Size,
		Blksize: int64(st.Blksize),
		Blocks:  st.Blocks,
		Uid:     st.Uid,
		Gid:     st.Gid,
	}
	return kind, ext, nil
}

func tsToFloat(ts unix.Timespec) float64 {
	return float64(ts.Sec) + float64(ts.Nsec)/float64(time.Second)
}
