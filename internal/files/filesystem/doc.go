// Package filesystem provides a read-only filesystem abstraction for input files.
//
// It lets line sources open input through an interface, so production code
// reads from the OS filesystem while tests use an in-memory implementation.
//
// Key interfaces:
//   - FileSystemProvider: opens, stats and reads files by path
//   - FileInfo: file metadata, an alias for fs.FileInfo
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing
//
// Missing files are reported with errors that satisfy errors.Is(err, fs.ErrNotExist)
// in every implementation.
package filesystem
