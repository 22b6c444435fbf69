package source

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/vvka-141/calsum/internal/files/filesystem"
	"github.com/vvka-141/calsum/pkg/calsum"
)

// MaxLineLength is the longest line a reader-backed source accepts.
const MaxLineLength = 1024 * 1024

var (
	_ calsum.LineSource = (*ReaderSource)(nil)
	_ calsum.LineSource = (*FileSource)(nil)
)

// ReaderSource yields the lines of an io.Reader.
// The reader is consumed by the first iteration.
type ReaderSource struct {
	r io.Reader
}

// FromReader creates a source reading lines from r.
// Panics if r is nil.
func FromReader(r io.Reader) *ReaderSource {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &ReaderSource{r: r}
}

func (s *ReaderSource) Lines() iter.Seq2[string, error] {
	return scanLines(s.r)
}

// FileSource yields the lines of a file. The file is opened anew on every
// iteration and closed when the iteration ends.
type FileSource struct {
	provider filesystem.FileSystemProvider
	path     string
}

// FromFile creates a source for the file at path.
// Panics if provider is nil.
func FromFile(provider filesystem.FileSystemProvider, path string) *FileSource {
	if provider == nil {
		panic("provider cannot be nil")
	}
	return &FileSource{provider: provider, path: path}
}

func (s *FileSource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := s.provider.OpenFile(s.path)
		if err != nil {
			yield("", fmt.Errorf("failed to open %s: %w", s.path, err))
			return
		}
		defer f.Close()

		for line, err := range scanLines(f) {
			if err != nil {
				err = fmt.Errorf("failed to read %s: %w", s.path, err)
			}
			if !yield(line, err) {
				return
			}
		}
	}
}

func scanLines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}
