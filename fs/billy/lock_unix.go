//go:build unix

package billy

import (
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fileio/fs/core"
)

// Lock acquires a flock(2) advisory lock on the handle.
func (f *File) Lock(exclusive, nonBlocking bool) error {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}
	if nonBlocking {
		how |= unix.LOCK_NB
	}
	return f.flock("flock", how)
}

// Unlock releases a lock previously acquired with Lock.
func (f *File) Unlock() error {
	return f.flock("funlock", unix.LOCK_UN)
}

func (f *File) flock(op string, how int) error {
	fd, ok := f.Fd()
	if !ok {
		return &fs.PathError{Op: op, Path: f.name, Err: core.ErrUnsupported}
	}
	for {
		err := unix.Flock(int(fd), how)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &fs.PathError{Op: op, Path: f.name, Err: err}
		}
		return nil
	}
}
