package fstest

import (
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// writeFile creates or truncates name and writes data to it.
func writeFile(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()
	f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%q): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%q): setup failed: %v", name, err)
	}
}

// readFile returns the full contents of name.
func readFile(t *testing.T, filesystem core.FS, name string) []byte {
	t.Helper()
	f, err := filesystem.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(%q): got error %v, want nil", name, err)
	}
	return data
}

func mkdirAll(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	if err := filesystem.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", name, err)
	}
}

func isSymlink(info fs.FileInfo) bool {
	return info.Mode()&fs.ModeSymlink != 0
}
