package source

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/calsum/internal/files/filesystem"
	"github.com/vvka-141/calsum/pkg/calsum"
)

func collect(t *testing.T, src calsum.LineSource) ([]string, error) {
	t.Helper()
	var lines []string
	for line, err := range src.Lines() {
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func TestFromReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "two1nine", []string{"two1nine"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := collect(t, FromReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestFromReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { FromReader(nil) })
}

func TestFromReader_ReadError(t *testing.T) {
	boom := errors.New("boom")

	_, err := collect(t, FromReader(iotest.ErrReader(boom)))
	assert.ErrorIs(t, err, boom)
}

func TestFromReader_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", MaxLineLength+1)

	_, err := collect(t, FromReader(strings.NewReader(long)))
	assert.Error(t, err)
}

func TestFromReader_EarlyStop(t *testing.T) {
	var got []string
	for line := range FromReader(strings.NewReader("a\nb\nc")).Lines() {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFromFile(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("input.txt", "two1nine\neightwothree\n")

	src := FromFile(mfs, "input.txt")

	lines, err := collect(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"two1nine", "eightwothree"}, lines)

	// Re-iterating opens the file again
	again, err := collect(t, src)
	require.NoError(t, err)
	assert.Equal(t, lines, again)
}

func TestFromFile_Missing(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")

	_, err := collect(t, FromFile(mfs, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected fs.ErrNotExist, got %v", err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestFromFile_NilProviderPanics(t *testing.T) {
	assert.Panics(t, func() { FromFile(nil, "x") })
}
