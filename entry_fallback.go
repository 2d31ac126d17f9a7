// entry_fallback.go - portable metadata for platforms without a syscall path
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

//go:build !linux && !darwin && !freebsd && !windows

package scandir

import "os"

// platformStat falls back to os.Lstat on platforms we don't special-case.
// Everything beyond the portable fs.FileInfo fields is left zero.
func platformStat(absPath string) (Kind, DirEntryExt, error) {
	fi, err := os.Lstat(absPath)
	if err != nil {
		return 0, DirEntryExt{}, err
	}

	mode := fi.Mode()
	kind := kindFromMode(mode)

	ext := DirEntryExt{
		DirEntryBase: DirEntryBase{
			IsSymlink: kind == KindSymlink,
			IsDir:     kind == KindDir,
			IsFile:    kind == KindFile,
			Ctime:     float64(fi.ModTime().Unix()),
			Mtime:     float64(fi.ModTime().Unix()),
			Atime:     float64(fi.ModTime().Unix()),
		},
		Mode: uint32(mode),
		Size: fi.Size(),
	}
	return kind, ext, nil
}
