package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// Relative paths passed to its methods are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	// Normalize root to forward slashes (virtual filesystem convention)
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.files[absPath] = &memoryFile{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string) (io.ReadCloser, error) {
	content, err := mfs.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", filePath)
	}
	return bytes.Clone(file.content), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	file, err := mfs.lookup(filePath)
	if err != nil {
		return nil, err
	}
	return file.info, nil
}

func (mfs *MemoryFileSystem) lookup(filePath string) (*memoryFile, error) {
	absPath := mfs.resolve(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, ok := mfs.files[absPath]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return file, nil
}

// resolve maps filePath to an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(filePath string) string {
	filePath = filepath.ToSlash(filePath)
	if filePath == "" || filePath == "." {
		return mfs.root
	}
	if strings.HasPrefix(filePath, "/") {
		return path.Clean(filePath)
	}
	return path.Join(mfs.root, filePath)
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Callers must hold mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newMemoryDir(dir)
	mfs.ensureDirectoriesExist(dir)
}

func newMemoryDir(dirPath string) *memoryFile {
	return &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(dirPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}
