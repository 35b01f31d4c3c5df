package fsutil

import (
	"io/fs"
	"time"
)

// Modified returns the last modification time of path.
func (t *Tools) Modified(path string) (time.Time, error) {
	info, err := t.fs.Stat(path)
	if err != nil {
		return time.Time{}, pathError(err, path, "failed to read modification time of %q", path)
	}
	return info.ModTime(), nil
}

// SetModified sets both the access and modification time of path to mtime.
func (t *Tools) SetModified(path string, mtime time.Time) error {
	if _, err := t.fs.Stat(path); err != nil {
		return pathError(err, path, "failed to set modification time of %q", path)
	}
	if err := t.fs.Chtimes(path, mtime, mtime); err != nil {
		return pathError(err, path, "failed to set modification time of %q", path)
	}
	t.logger.Debug("set modification time", "path", path, "mtime", mtime)
	return nil
}

// Permissions returns the permission bits of path.
func (t *Tools) Permissions(path string) (fs.FileMode, error) {
	info, err := t.fs.Stat(path)
	if err != nil {
		return 0, pathError(err, path, "failed to read permissions of %q", path)
	}
	return info.Mode().Perm(), nil
}

// SetPermissions sets the permission bits of path.
func (t *Tools) SetPermissions(path string, mode fs.FileMode) error {
	if _, err := t.fs.Stat(path); err != nil {
		return pathError(err, path, "failed to set permissions of %q", path)
	}
	if err := t.fs.Chmod(path, mode.Perm()); err != nil {
		return pathError(err, path, "failed to set permissions of %q to %v", path, mode.Perm())
	}
	t.logger.Debug("set permissions", "path", path, "mode", mode.Perm())
	return nil
}
