package stream

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/fileio/fs/billy"
	"github.com/jmgilman/go/fileio/fs/core"
)

// Option configures stream construction.
type Option func(*config)

type config struct {
	fs     core.FS
	logger *slog.Logger
	perm   fs.FileMode
}

func newConfig(opts []Option) *config {
	cfg := &config{
		perm: 0o666,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// filesystem returns the configured filesystem or the local default.
func (c *config) filesystem() core.FS {
	if c.fs == nil {
		return billy.NewLocal()
	}
	return c.fs
}

// WithFS sets the filesystem Open resolves paths against.
// Defaults to the local filesystem.
func WithFS(fsys core.FS) Option {
	return func(c *config) {
		c.fs = fsys
	}
}

// WithLogger sets the logger used for debug records.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPerm sets the permission bits used when Open creates a file
// (before umask). Defaults to 0666.
func WithPerm(perm fs.FileMode) Option {
	return func(c *config) {
		c.perm = perm
	}
}
