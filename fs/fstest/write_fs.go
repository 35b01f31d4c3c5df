package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// TestWriteFS tests OpenFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS, base string, config FSTestConfig) {
	config.run(t, "WriteFS", "OpenFileCreate", func(t *testing.T) {
		name := join(base, "created.txt")
		writeFile(t, filesystem, name, []byte("hello"))
		if got := readFile(t, filesystem, name); !bytes.Equal(got, []byte("hello")) {
			t.Errorf("read back %q, want %q", got, "hello")
		}
	})

	config.run(t, "WriteFS", "OpenFileTruncate", func(t *testing.T) {
		name := join(base, "truncate.txt")
		writeFile(t, filesystem, name, []byte("long content"))
		writeFile(t, filesystem, name, []byte("short"))
		if got := readFile(t, filesystem, name); !bytes.Equal(got, []byte("short")) {
			t.Errorf("read back %q, want %q", got, "short")
		}
	})

	config.run(t, "WriteFS", "OpenFileAppend", func(t *testing.T) {
		name := join(base, "append.txt")
		writeFile(t, filesystem, name, []byte("one"))
		f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			t.Fatalf("OpenFile(%q, O_APPEND): got error %v, want nil", name, err)
		}
		if _, err := f.Write([]byte("two")); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}
		if got := readFile(t, filesystem, name); !bytes.Equal(got, []byte("onetwo")) {
			t.Errorf("read back %q, want %q", got, "onetwo")
		}
	})

	config.run(t, "WriteFS", "OpenFileExclusive", func(t *testing.T) {
		name := join(base, "exclusive.txt")
		writeFile(t, filesystem, name, []byte("x"))
		_, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("OpenFile(%q, O_EXCL): got error %v, want fs.ErrExist", name, err)
		}
	})

	config.run(t, "WriteFS", "OpenFileNotExist", func(t *testing.T) {
		_, err := filesystem.OpenFile(join(base, "missing.txt"), os.O_RDONLY, 0)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("OpenFile(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "WriteFS", "Mkdir", func(t *testing.T) {
		name := join(base, "newdir")
		if err := filesystem.Mkdir(name, 0o755); err != nil {
			t.Fatalf("Mkdir(%q): got error %v, want nil", name, err)
		}
		if err := filesystem.Mkdir(name, 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%q) twice: got error %v, want fs.ErrExist", name, err)
		}
		if err := filesystem.Mkdir(join(base, "no", "parent"), 0o755); err == nil {
			t.Errorf("Mkdir(no/parent): got nil, want error")
		}
	})

	config.run(t, "WriteFS", "MkdirAll", func(t *testing.T) {
		name := join(base, "a", "b", "c")
		if err := filesystem.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", name, err)
		}
		if err := filesystem.MkdirAll(name, 0o755); err != nil {
			t.Errorf("MkdirAll(%q) twice: got error %v, want nil", name, err)
		}
		info, err := filesystem.Stat(name)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%q) after MkdirAll: info=%v err=%v, want directory", name, info, err)
		}
	})
}
