package stream

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/fileio/errors"
)

// Open opens the named file with an fopen-style mode (see ParseMode) and
// returns a stream owning the handle.
//
// Failure to parse the mode or to open the file is a resource error naming
// both the path and the mode.
func Open(path, mode string, opts ...Option) (*Stream, error) {
	cfg := newConfig(opts)
	fsys := cfg.filesystem()

	fail := func(err error) error {
		return errors.WrapWithContext(err, errors.CodeResource,
			fmt.Sprintf("failed to open %q with mode %q", path, mode),
			map[string]interface{}{"path": path, "mode": mode})
	}

	flag, err := ParseMode(mode)
	if err != nil {
		return nil, fail(err)
	}

	// Billy creates missing parents on O_CREATE; a missing directory must
	// still fail the open.
	if parent := filepath.Dir(path); flag&os.O_CREATE != 0 && parent != "." && parent != "/" {
		info, err := fsys.Stat(parent)
		if err != nil {
			return nil, fail(err)
		}
		if !info.IsDir() {
			return nil, fail(fmt.Errorf("parent of %q is not a directory", path))
		}
	}

	handle, err := fsys.OpenFile(path, flag, cfg.perm)
	if err != nil {
		return nil, fail(err)
	}

	cfg.logger.Debug("opened stream", "path", path, "mode", mode)
	return newStream(handle, path, cfg.logger), nil
}
