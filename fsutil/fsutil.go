package fsutil

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/billy"
	"github.com/jmgilman/go/fileio/fs/core"
)

// Tools runs filesystem utilities against one filesystem.
type Tools struct {
	fs     core.FS
	logger *slog.Logger
}

// Option configures a Tools value.
type Option func(*Tools)

// WithLogger sets the logger used for debug records.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tools) {
		t.logger = logger
	}
}

// New returns Tools operating on fsys.
func New(fsys core.FS, opts ...Option) *Tools {
	t := &Tools{fs: fsys}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

var local = New(billy.NewLocal())

// Remove removes path from the local filesystem. See Tools.Remove.
func Remove(path string, opts ...RemoveOption) error {
	return local.Remove(path, opts...)
}

// Duplicate copies from to to on the local filesystem. See Tools.Duplicate.
func Duplicate(from, to string, opts ...DuplicateOption) error {
	return local.Duplicate(from, to, opts...)
}

// Resolve resolves a symbolic link on the local filesystem. See Tools.Resolve.
func Resolve(link string, opts ...ResolveOption) (string, error) {
	return local.Resolve(link, opts...)
}

// Modified returns the modification time of a local path.
func Modified(path string) (time.Time, error) {
	return local.Modified(path)
}

// SetModified sets the modification time of a local path.
func SetModified(path string, mtime time.Time) error {
	return local.SetModified(path, mtime)
}

// Permissions returns the permission bits of a local path.
func Permissions(path string) (fs.FileMode, error) {
	return local.Permissions(path)
}

// SetPermissions sets the permission bits of a local path.
func SetPermissions(path string, mode fs.FileMode) error {
	return local.SetPermissions(path, mode)
}

// TempPath generates an unused path in a local directory. See Tools.TempPath.
func TempPath(opts ...TempOption) (string, error) {
	return local.TempPath(opts...)
}

// TempDir creates a local temporary directory. See Tools.TempDir.
func TempDir(opts ...TempOption) (string, error) {
	return local.TempDir(opts...)
}

// TempFile creates an empty local temporary file. See Tools.TempFile.
func TempFile(opts ...TempOption) (string, error) {
	return local.TempFile(opts...)
}

// pathError wraps err as a path error carrying path in its context.
func pathError(err error, path, format string, args ...interface{}) error {
	return errors.WrapWithContext(err, errors.CodePath, fmt.Sprintf(format, args...),
		map[string]interface{}{"path": path})
}
