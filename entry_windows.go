// entry_windows.go - metadata extraction for windows
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

//go:build windows

package scandir

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// platformStat on Windows already gets FILE_ATTRIBUTE bits and size for
// free from os.Lstat; an extra handle open is only needed for the
// hard-link count, which we fetch via GetFileInformationByHandle.
func platformStat(absPath string) (Kind, DirEntryExt, error) {
	fi, err := os.Lstat(absPath)
	if err != nil {
		return 0, DirEntryExt{}, err
	}

	var mode fs.FileMode = fi.Mode()
	kind := kindFromMode(mode)

	var ino, nlink uint64
	if h, err := openRawHandle(absPath); err == nil {
		var info windows.ByHandleFileInformation
		if err := windows.GetFileInformationByHandle(h, &info); err == nil {
			ino = uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow)
			nlink = uint64(info.NumberOfLinks)
		}
		windows.CloseHandle(h)
	}

	ext := DirEntryExt{
		DirEntryBase: DirEntryBase{
			IsSymlink: kind == KindSymlink,
			IsDir:     kind == KindDir,
			IsFile:    kind == KindFile,
			Ctime:     float64(fi.ModTime().Unix()), // Windows doesn't expose ctime portably; approximate
			Mtime:     float64(fi.ModTime().UnixNano()) / 1e9,
			Atime:     float64(fi.ModTime().UnixNano()) / 1e9,
		},
		Mode:  uint32(mode),
		Ino:   ino,
		Nlink: nlink,
		Size:  fi.Size(),
	}

	// allocation size (compressed/sparse aware) - best effort. Blocks is
	// kept in 512-byte units to match the POSIX st_blocks convention used
	// elsewhere for Usage accounting; Blksize is set to a fixed 4096 as
	// advisory information only, not the volume's actual cluster size.
	if sz, err := compressedFileSize(absPath); err == nil {
		const cluster = 4096
		ext.Blocks = (sz + 511) / 512
		ext.Blksize = cluster
	}

	return kind, ext, nil
}

func openRawHandle(path string) (windows.Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.CreateFile(p,
		0, windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
}

func compressedFileSize(path string) (int64, error) {
	p, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	var high uint32
	low, err := windows.GetCompressedFileSize(p, &high)
	if err != nil {
		return 0, err
	}
	return int64(high)<<32 | int64(low), nil
}
