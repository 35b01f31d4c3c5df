package fsutil

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/fileio/errors"
)

// RemoveOption configures Remove.
type RemoveOption func(*removeConfig)

type removeConfig struct {
	follow bool
}

// FollowSymlinks makes Remove descend into symbolically linked directories
// and remove their contents. The link itself is removed, never its target
// directory.
func FollowSymlinks() RemoveOption {
	return func(c *removeConfig) {
		c.follow = true
	}
}

// Remove deletes path. Directories are emptied depth-first and then removed.
// A symbolic link is unlinked; unless FollowSymlinks is given the tree it
// points to is left alone.
func (t *Tools) Remove(path string, opts ...RemoveOption) error {
	var cfg removeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return t.remove(path, cfg.follow, map[string]bool{})
}

// remove deletes path depth-first. active holds the directories currently
// being emptied; meeting one again through a followed link is a loop.
func (t *Tools) remove(path string, follow bool, active map[string]bool) error {
	info, err := t.fs.Lstat(path)
	if err != nil {
		return pathError(err, path, "failed to remove %q", path)
	}

	dir := ""
	switch {
	case info.IsDir():
		dir = path
	case info.Mode()&fs.ModeSymlink != 0 && follow:
		target, err := t.fs.Stat(path)
		if err == nil && target.IsDir() {
			if dir, err = t.readlink(path); err != nil {
				return err
			}
		}
	}

	if dir != "" {
		key := filepath.Clean(dir)
		if active[key] {
			return errors.WithContext(
				errors.Newf(errors.CodePath, "symbolic link loop at %q while removing", path), "path", path)
		}
		active[key] = true
		defer delete(active, key)

		entries, err := t.fs.ReadDir(dir)
		if err != nil {
			return pathError(err, dir, "failed to list %q", dir)
		}
		for _, entry := range entries {
			if err := t.remove(filepath.Join(dir, entry.Name()), follow, active); err != nil {
				return err
			}
		}
	}

	if err := t.fs.Remove(path); err != nil {
		return pathError(err, path, "failed to remove %q", path)
	}
	t.logger.Debug("removed path", "path", path, "dir", info.IsDir())
	return nil
}

// readlink reads one level of link and makes a relative target absolute
// against the link's directory.
func (t *Tools) readlink(link string) (string, error) {
	target, err := t.fs.Readlink(link)
	if err != nil {
		return "", pathError(err, link, "failed to read link %q", link)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(link), target)
	}
	return target, nil
}

// isSymlink reports whether path is a symbolic link. A missing path is not
// an error.
func (t *Tools) isSymlink(path string) (bool, error) {
	info, err := t.fs.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}
