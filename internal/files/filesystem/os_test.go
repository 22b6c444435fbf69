package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_OpenFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(filePath, []byte("two1nine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := NewOSFileSystem().OpenFile(filePath)
	if err != nil {
		t.Fatalf("OpenFile(%q) error = %v", filePath, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "two1nine\n" {
		t.Errorf("content = %q, want %q", content, "two1nine\n")
	}
}

func TestOSFileSystem_OpenFile_NonexistentPath(t *testing.T) {
	_, err := NewOSFileSystem().OpenFile(filepath.Join(t.TempDir(), "nonexistent"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(nonexistent) error = %v, want fs.ErrNotExist", err)
	}
}

func TestOSFileSystem_OpenFile_Directory(t *testing.T) {
	_, err := NewOSFileSystem().OpenFile(t.TempDir())
	if err == nil {
		t.Error("OpenFile(directory) should return error")
	}
}

func TestOSFileSystem_ReadFileAndStat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "input.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	p := NewOSFileSystem()

	data, err := p.ReadFile(filePath)
	if err != nil || string(data) != "content" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	info, err := p.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 7 {
		t.Errorf("Size() = %d, want 7", info.Size())
	}

	ok, err := Exists(p, filePath)
	if err != nil || !ok {
		t.Errorf("Exists() = %v, %v", ok, err)
	}
	ok, err = Exists(p, filepath.Join(dir, "missing"))
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v", ok, err)
	}
}
