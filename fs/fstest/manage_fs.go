package fstest

import (
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// TestManageFS tests Remove.
func TestManageFS(t *testing.T, filesystem core.FS, base string, config FSTestConfig) {
	config.run(t, "ManageFS", "RemoveFile", func(t *testing.T) {
		name := join(base, "remove.txt")
		writeFile(t, filesystem, name, []byte("data"))
		if err := filesystem.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		if ok, _ := filesystem.Exists(name); ok {
			t.Errorf("Exists(%q) after Remove = true, want false", name)
		}
	})

	config.run(t, "ManageFS", "RemoveEmptyDir", func(t *testing.T) {
		name := join(base, "empty")
		mkdirAll(t, filesystem, name)
		if err := filesystem.Remove(name); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", name, err)
		}
		if ok, _ := filesystem.Exists(name); ok {
			t.Errorf("Exists(%q) after Remove = true, want false", name)
		}
	})

	config.run(t, "ManageFS", "RemoveNonEmptyDir", func(t *testing.T) {
		dir := join(base, "full")
		writeFile(t, filesystem, join(dir, "child.txt"), []byte("x"))
		if err := filesystem.Remove(dir); err == nil {
			t.Errorf("Remove(%q) on non-empty directory: got nil, want error", dir)
		}
	})

	config.run(t, "ManageFS", "RemoveNotExist", func(t *testing.T) {
		if err := filesystem.Remove(join(base, "missing")); err == nil {
			t.Errorf("Remove(missing): got nil, want error")
		}
	})
}
