//go:build !unix

package billy

import (
	"io/fs"

	"github.com/jmgilman/go/fileio/fs/core"
)

// Lock is unsupported on this platform.
func (f *File) Lock(_, _ bool) error {
	return &fs.PathError{Op: "flock", Path: f.name, Err: core.ErrUnsupported}
}

// Unlock is unsupported on this platform.
func (f *File) Unlock() error {
	return &fs.PathError{Op: "funlock", Path: f.name, Err: core.ErrUnsupported}
}
