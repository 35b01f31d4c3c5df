package fstest

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/go/fileio/fs/core"
)

// TestMetadataFS tests Lstat, Chmod and Chtimes.
func TestMetadataFS(t *testing.T, filesystem core.FS, base string, config FSTestConfig) {
	name := join(base, "meta.txt")
	writeFile(t, filesystem, name, []byte("metadata"))

	config.run(t, "MetadataFS", "Lstat", func(t *testing.T) {
		info, err := filesystem.Lstat(name)
		if err != nil {
			t.Fatalf("Lstat(%q): got error %v, want nil", name, err)
		}
		if info.Name() != "meta.txt" {
			t.Errorf("Lstat(%q): Name() = %q, want %q", name, info.Name(), "meta.txt")
		}
		if _, err := filesystem.Lstat(join(base, "missing")); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Lstat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	config.run(t, "MetadataFS", "Chmod", func(t *testing.T) {
		err := filesystem.Chmod(name, 0o600)
		if !config.Metadata {
			if err != nil && !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chmod(%q): got error %v, want nil or core.ErrUnsupported", name, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Chmod(%q): got error %v, want nil", name, err)
		}
		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("Stat(%q) after Chmod: Perm() = %o, want %o", name, info.Mode().Perm(), 0o600)
		}
	})

	config.run(t, "MetadataFS", "Chtimes", func(t *testing.T) {
		mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		err := filesystem.Chtimes(name, mtime, mtime)
		if !config.Metadata {
			if err != nil && !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chtimes(%q): got error %v, want nil or core.ErrUnsupported", name, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Chtimes(%q): got error %v, want nil", name, err)
		}
		info, err := filesystem.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("Stat(%q) after Chtimes: ModTime() = %v, want %v", name, info.ModTime(), mtime)
		}
	})
}
