package fsutil

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/stream"
)

// DuplicateOption configures Duplicate.
type DuplicateOption func(*duplicateConfig)

type duplicateConfig struct {
	overwrite bool
	depth     int
}

// WithOverwrite controls whether existing destination files are replaced.
// Defaults to true. When false, existing files are skipped.
func WithOverwrite(overwrite bool) DuplicateOption {
	return func(c *duplicateConfig) {
		c.overwrite = overwrite
	}
}

// WithDepth limits how many levels Duplicate copies. 1 copies only from
// itself (an empty directory when from is a directory), 0 copies nothing and
// -1, the default, is unlimited.
func WithDepth(depth int) DuplicateOption {
	return func(c *duplicateConfig) {
		c.depth = depth
	}
}

// Duplicate copies from to to, recursing into directories. The parent of to
// must already exist. Destination directories are created before their
// children are copied, and files keep their permission bits.
func (t *Tools) Duplicate(from, to string, opts ...DuplicateOption) error {
	cfg := duplicateConfig{overwrite: true, depth: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return t.duplicate(from, to, cfg.overwrite, cfg.depth)
}

func (t *Tools) duplicate(from, to string, overwrite bool, depth int) error {
	if depth == 0 {
		return nil
	}
	next := depth
	if depth > 0 {
		next = depth - 1
	}

	parent := filepath.Dir(to)
	if info, err := t.fs.Stat(parent); err != nil {
		return pathError(err, to, "parent directory of %q does not exist", to)
	} else if !info.IsDir() {
		return errors.WithContext(
			errors.Newf(errors.CodePath, "parent of %q is not a directory", to), "path", to)
	}

	info, err := t.fs.Stat(from)
	if err != nil {
		return pathError(err, from, "failed to copy %q", from)
	}

	if !info.IsDir() {
		return t.copyFile(from, to, info.Mode().Perm(), overwrite)
	}

	existing, err := t.fs.Stat(to)
	switch {
	case err == nil && !existing.IsDir():
		return errors.WithContext(
			errors.Newf(errors.CodePath, "cannot copy directory %q over file %q", from, to), "path", to)
	case err != nil && errors.Is(err, fs.ErrNotExist):
		if err := t.fs.Mkdir(to, info.Mode().Perm()); err != nil {
			return pathError(err, to, "failed to create directory %q", to)
		}
		t.logger.Debug("created directory", "path", to)
	case err != nil:
		return pathError(err, to, "failed to copy %q to %q", from, to)
	}

	entries, err := t.fs.ReadDir(from)
	if err != nil {
		return pathError(err, from, "failed to list %q", from)
	}
	for _, entry := range entries {
		name := entry.Name()
		if err := t.duplicate(filepath.Join(from, name), filepath.Join(to, name), overwrite, next); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tools) copyFile(from, to string, perm fs.FileMode, overwrite bool) error {
	if !overwrite {
		exists, err := t.fs.Exists(to)
		if err != nil {
			return pathError(err, to, "failed to check %q", to)
		}
		if exists {
			t.logger.Debug("skipped existing file", "path", to)
			return nil
		}
	}

	src, err := stream.Open(from, "r", stream.WithFS(t.fs), stream.WithLogger(t.logger))
	if err != nil {
		return pathError(err, from, "failed to copy %q to %q", from, to)
	}
	defer src.Close()

	dst, err := stream.Open(to, "w", stream.WithFS(t.fs), stream.WithLogger(t.logger), stream.WithPerm(perm))
	if err != nil {
		return pathError(err, to, "failed to copy %q to %q", from, to)
	}
	defer dst.Close()

	n, err := dst.CopyFrom(src, 0, stream.DefaultChunkSize)
	if err != nil {
		return pathError(err, to, "failed to copy %q to %q", from, to)
	}
	if err := dst.Release(); err != nil {
		return pathError(err, to, "failed to copy %q to %q", from, to)
	}

	t.logger.Debug("copied file", "from", from, "to", to, "bytes", n)
	return nil
}
