package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// TestReadFS tests Stat, ReadDir and Exists.
func TestReadFS(t *testing.T, filesystem core.FS, base string, config FSTestConfig) {
	content := []byte("test file content")
	dir := join(base, "testdir")
	file := join(dir, "testfile.txt")
	mkdirAll(t, filesystem, join(dir, "sub"))
	writeFile(t, filesystem, file, content)

	config.run(t, "ReadFS", "StatFile", func(t *testing.T) {
		info, err := filesystem.Stat(file)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", file, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", file)
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(%q): Size() = %d, want %d", file, info.Size(), len(content))
		}
	})

	config.run(t, "ReadFS", "StatDir", func(t *testing.T) {
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", dir)
		}
	})

	config.run(t, "ReadFS", "StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat(join(base, "missing.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "ReadFS", "ReadDir", func(t *testing.T) {
		entries, err := filesystem.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir(%q): got error %v, want nil", dir, err)
		}
		if len(entries) != 2 {
			t.Fatalf("ReadDir(%q): got %d entries, want 2", dir, len(entries))
		}
		if entries[0].Name() != "sub" || !entries[0].IsDir() {
			t.Errorf("ReadDir(%q)[0] = %q (dir=%v), want sub (dir=true)", dir, entries[0].Name(), entries[0].IsDir())
		}
		if entries[1].Name() != "testfile.txt" || entries[1].IsDir() {
			t.Errorf("ReadDir(%q)[1] = %q (dir=%v), want testfile.txt (dir=false)", dir, entries[1].Name(), entries[1].IsDir())
		}
	})

	config.run(t, "ReadFS", "Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			file:                      true,
			dir:                       true,
			join(base, "missing.txt"): false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
			}
			if got != want {
				t.Errorf("Exists(%q) = %v, want %v", name, got, want)
			}
		}
	})
}
