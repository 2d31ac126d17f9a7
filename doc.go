// doc.go - package scandir
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

// Package scandir does a concurrent, recursive file system traversal and
// returns aggregate statistics (Count), per-directory groupings (Walk) or
// one record per entry (Scandir). Every operation is built on the same
// work-stealing traversal engine; callers pick the shape they want and a
// ReturnType that controls how much metadata is collected per entry.
//
// By default this library uses all the available CPUs (as returned by
// runtime.NumCPU(), overridable with WithConcurrency) to maximize
// concurrency of the file tree traversal. It
// never follows symbolic links and never mutates the file system.
package scandir
