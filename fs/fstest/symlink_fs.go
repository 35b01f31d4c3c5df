package fstest

import (
	"bytes"
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// TestSymlinkFS tests Symlink, Readlink and symlink-aware Lstat.
func TestSymlinkFS(t *testing.T, filesystem core.FS, base string, config FSTestConfig) {
	content := []byte("target file content")
	target := join(base, "target.txt")
	writeFile(t, filesystem, target, content)

	config.run(t, "SymlinkFS", "Create", func(t *testing.T) {
		link := join(base, "link.txt")
		if err := filesystem.Symlink(target, link); err != nil {
			t.Fatalf("Symlink(%q, %q): got error %v, want nil", target, link, err)
		}
		got, err := filesystem.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%q): got error %v, want nil", link, err)
		}
		if got != target {
			t.Errorf("Readlink(%q) = %q, want %q", link, got, target)
		}
		info, err := filesystem.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat(%q): got error %v, want nil", link, err)
		}
		if !isSymlink(info) {
			t.Errorf("Lstat(%q): mode %v is not a symlink", link, info.Mode())
		}
		if data := readFile(t, filesystem, link); !bytes.Equal(data, content) {
			t.Errorf("read through %q = %q, want %q", link, data, content)
		}
	})

	config.run(t, "SymlinkFS", "Directory", func(t *testing.T) {
		dir := join(base, "realdir")
		writeFile(t, filesystem, join(dir, "child.txt"), []byte("child"))
		link := join(base, "dirlink")
		if err := filesystem.Symlink(dir, link); err != nil {
			t.Fatalf("Symlink(%q, %q): got error %v, want nil", dir, link, err)
		}
		info, err := filesystem.Stat(link)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", link, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", link)
		}
	})

	config.run(t, "SymlinkFS", "ReadlinkNotLink", func(t *testing.T) {
		if _, err := filesystem.Readlink(target); err == nil {
			t.Errorf("Readlink(%q) on regular file: got nil, want error", target)
		}
	})

	config.run(t, "SymlinkFS", "Broken", func(t *testing.T) {
		link := join(base, "broken")
		missing := join(base, "does-not-exist")
		if err := filesystem.Symlink(missing, link); err != nil {
			t.Fatalf("Symlink(%q, %q): got error %v, want nil", missing, link, err)
		}
		info, err := filesystem.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat(%q): got error %v, want nil", link, err)
		}
		if !isSymlink(info) {
			t.Errorf("Lstat(%q): mode %v is not a symlink", link, info.Mode())
		}
	})

	config.run(t, "SymlinkFS", "RemoveLink", func(t *testing.T) {
		link := join(base, "removable")
		if err := filesystem.Symlink(target, link); err != nil {
			t.Fatalf("Symlink(%q, %q): got error %v, want nil", target, link, err)
		}
		if err := filesystem.Remove(link); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", link, err)
		}
		if ok, _ := filesystem.Exists(link); ok {
			t.Errorf("Exists(%q) after Remove = true, want false", link)
		}
		if data := readFile(t, filesystem, target); !bytes.Equal(data, content) {
			t.Errorf("target %q after removing link = %q, want %q", target, data, content)
		}
	})
}
