package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read-only access to files by path.
type FileSystemProvider interface {
	// OpenFile opens a regular file for streaming reads. The caller must close it.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadFile reads the whole content of a regular file.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}

// Exists reports whether path names an existing regular file.
// Any Stat error other than fs.ErrNotExist is returned as is.
func Exists(provider FileSystemProvider, path string) (bool, error) {
	info, err := provider.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
