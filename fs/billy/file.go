package billy

import (
	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/fileio/fs/core"
)

// File wraps billy.File to implement core.File and core.Locker.
// It stores the name it was opened with since billy.File.Name() may return
// different formats depending on the backend.
type File struct {
	file billy.File
	name string
}

// Read delegates directly to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates directly to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek delegates directly to the underlying billy.File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close delegates directly to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Fd returns the OS descriptor backing the handle, if any.
// osfs handles embed *os.File; memfs handles have no descriptor.
func (f *File) Fd() (uintptr, bool) {
	if d, ok := f.file.(interface{ Fd() uintptr }); ok {
		return d.Fd(), true
	}
	return 0, false
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ core.Locker = (*File)(nil)
)
