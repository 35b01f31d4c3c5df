package billy

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fileio/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	filesystem
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	filesystem
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
//
// It uses the bound osfs flavour: its handles are plain *os.File values
// (so they can be locked) and it honours the permissions given to Mkdir.
func NewLocal() *LocalFS {
	return &LocalFS{filesystem{
		bfs:       osfs.New("/", osfs.WithBoundOS()),
		fsType:    core.FSTypeLocal,
		normalize: absolute,
	}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *MemoryFS {
	return &MemoryFS{filesystem{
		bfs:       memfs.New(),
		fsType:    core.FSTypeMemory,
		normalize: clean,
	}}
}

// filesystem is the provider implementation shared by LocalFS and MemoryFS.
type filesystem struct {
	bfs       billy.Filesystem
	fsType    core.FSType
	normalize func(string) string
}

// absolute makes local names absolute so relative paths keep their os
// package meaning under a "/"-rooted osfs.
func absolute(name string) string {
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return filepath.Clean(name)
}

func clean(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// Unwrap returns the underlying billy.Filesystem.
func (f *filesystem) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the provider's filesystem type.
func (f *filesystem) Type() core.FSType {
	return f.fsType
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Stat returns file metadata for the named file, following symbolic links.
func (f *filesystem) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(f.normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by name.
func (f *filesystem) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := f.bfs.ReadDir(f.normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// Exists reports whether the named file or directory exists.
func (f *filesystem) Exists(name string) (bool, error) {
	_, err := f.bfs.Lstat(f.normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags and permissions.
//
// Billy creates missing parent directories when os.O_CREATE is set.
func (f *filesystem) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = f.normalize(name)
	bf, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, name: name}, nil
}

// Mkdir creates a new directory. Unlike MkdirAll, it fails if the directory
// exists or its parent does not.
func (f *filesystem) Mkdir(name string, perm fs.FileMode) error {
	name = f.normalize(name)
	if _, err := f.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		info, err := f.bfs.Stat(parent)
		if err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
		}
	}
	// The parent exists, so MkdirAll creates exactly one directory.
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *filesystem) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(f.normalize(path), perm)
}

// Remove removes the named file, symbolic link or empty directory.
func (f *filesystem) Remove(name string) error {
	name = f.normalize(name)
	// Bound osfs resolves a trailing symlink before removing, which would
	// delete the link's target instead of the link.
	if f.fsType == core.FSTypeLocal {
		return os.Remove(name)
	}
	return f.bfs.Remove(name)
}

// Lstat returns file info without following symbolic links.
func (f *filesystem) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(f.normalize(name))
}

// Chmod changes the permission bits of the named file.
func (f *filesystem) Chmod(name string, mode fs.FileMode) error {
	name = f.normalize(name)
	if c, ok := f.bfs.(billy.Change); ok {
		return c.Chmod(name, mode)
	}
	if f.fsType == core.FSTypeLocal {
		return os.Chmod(name, mode)
	}
	return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
}

// Chtimes changes the access and modification times of the named file.
func (f *filesystem) Chtimes(name string, atime, mtime time.Time) error {
	name = f.normalize(name)
	if c, ok := f.bfs.(billy.Change); ok {
		return c.Chtimes(name, atime, mtime)
	}
	if f.fsType == core.FSTypeLocal {
		return os.Chtimes(name, atime, mtime)
	}
	return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrUnsupported}
}

// Symlink creates newname as a symbolic link to oldname.
func (f *filesystem) Symlink(oldname, newname string) error {
	return f.bfs.Symlink(oldname, f.normalize(newname))
}

// Readlink returns the destination of the named symbolic link.
func (f *filesystem) Readlink(name string) (string, error) {
	return f.bfs.Readlink(f.normalize(name))
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
