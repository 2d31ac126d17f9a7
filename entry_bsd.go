// entry_bsd.go - Stat_t to DirEntryExt for darwin and freebsd
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

//go:build darwin || freebsd

package scandir

import (
	"io/fs"
	"syscall"
	"time"
)

func platformStat(absPath string) (Kind, DirEntryExt, error) {
	var st syscall.Stat_t
	if err := syscall.Lstat(absPath, &st); err != nil {
		return 0, DirEntryExt{}, err
	}

	mode := fs.FileMode(st.Mode & 0777)
	switch st.Mode & syscall.S_IFMT {
	case syscall.S_IFBLK:
		mode |= fs.ModeDevice
	case syscall.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case syscall.S_IFDIR:
		mode |= fs.ModeDir
	case syscall.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case syscall.S_IFLNK:
		mode |= fs.ModeSymlink
	case syscall.S_IFSOCK:
		mode |= fs.ModeSocket
	}

	kind := kindFromMode(mode)

	ext := DirEntryExt{
		DirEntryBase: DirEntryBase{
			IsSymlink: kind == KindSymlink,
			IsDir:     kind == KindDir,
			IsFile:    kind == KindFile,
			Ctime:     ts2float(st.Ctimespec),
			Mtime:     ts2float(st.Mtimespec),
			Atime:     ts2float(st.Atimespec),
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

func ts2float(ts syscall.Timespec) float64 {
	return float64(ts.Sec) + float64(ts.Nsec)/float64(time.Second)
}
