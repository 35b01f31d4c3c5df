package core

import (
	"io"
	"io/fs"
	"time"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// File is an open, seekable handle to a file-like resource.
//
// A File is exclusively owned by whoever opened it and is not safe for
// concurrent use.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// Locker is implemented by handles that can take OS advisory locks.
type Locker interface {
	// Lock acquires a shared or exclusive advisory lock. With nonBlocking
	// set, Lock fails immediately instead of waiting when the lock is held
	// elsewhere. Handles without an OS descriptor return ErrUnsupported.
	Lock(exclusive, nonBlocking bool) error

	// Unlock releases a lock previously acquired with Lock.
	Unlock() error
}

// FS is the filesystem contract used by the fileio packages.
type FS interface {
	ReadFS
	WriteFS
	ManageFS
	MetadataFS
	SymlinkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Stat returns metadata for the named file, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines operations that create files and directories.
type WriteFS interface {
	// OpenFile opens a file with the specified flags (os.O_RDONLY, os.O_RDWR,
	// os.O_CREATE, ...) and permissions. The returned File must be closed.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Mkdir creates a single directory. It fails with ErrExist if the
	// directory exists and with ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any necessary parents.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines destructive operations.
type ManageFS interface {
	// Remove removes the named file, symbolic link or empty directory.
	// Symbolic links are removed, never followed.
	Remove(name string) error
}

// MetadataFS defines metadata operations.
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the permission bits of the named file.
	Chmod(name string, mode fs.FileMode) error

	// Chtimes changes the access and modification times of the named file.
	Chtimes(name string, atime, mtime time.Time) error
}

// SymlinkFS defines symbolic link operations.
type SymlinkFS interface {
	// Symlink creates newname as a symbolic link to oldname. The target is
	// stored as-is and need not exist.
	Symlink(oldname, newname string) error

	// Readlink returns the destination of the named symbolic link.
	// If the file is not a symbolic link, Readlink returns an error.
	Readlink(name string) (string, error)
}
