package fsutil

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/core"
)

const (
	// Placeholder is the token in a temp template replaced by random hex.
	Placeholder = "*"

	// DefaultTemplate is the template used when none is given.
	DefaultTemplate = "tmp-" + Placeholder

	randomLength = 32
)

// TempOption configures TempPath, TempDir and TempFile.
type TempOption func(*tempConfig)

type tempConfig struct {
	template string
	dir      string
}

// WithTemplate sets the base name template. It must contain exactly one
// Placeholder and no path separator.
func WithTemplate(template string) TempOption {
	return func(c *tempConfig) {
		c.template = template
	}
}

// WithDir sets the directory the path is generated in. Defaults to
// os.TempDir().
func WithDir(dir string) TempOption {
	return func(c *tempConfig) {
		c.dir = dir
	}
}

// TempPath generates a path that does not exist yet. Nothing is created.
func (t *Tools) TempPath(opts ...TempOption) (string, error) {
	cfg := tempConfig{template: DefaultTemplate}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dir == "" {
		cfg.dir = os.TempDir()
	}

	if n := strings.Count(cfg.template, Placeholder); n != 1 {
		return "", tempError(nil, cfg.dir, "template %q must contain exactly one %q, found %d", cfg.template, Placeholder, n)
	}
	if strings.ContainsAny(cfg.template, `/\`) {
		return "", tempError(nil, cfg.dir, "template %q must not contain a path separator", cfg.template)
	}

	info, err := t.fs.Stat(cfg.dir)
	if err != nil {
		return "", tempError(err, cfg.dir, "temp directory %q does not exist", cfg.dir)
	}
	if !info.IsDir() {
		return "", tempError(nil, cfg.dir, "temp directory %q is not a directory", cfg.dir)
	}
	if t.fs.Type() == core.FSTypeLocal {
		if err := writable(cfg.dir); err != nil {
			return "", tempError(err, cfg.dir, "temp directory %q is not writable", cfg.dir)
		}
	}

	for {
		random, err := randomHex()
		if err != nil {
			return "", tempError(err, cfg.dir, "failed to generate temp name in %q", cfg.dir)
		}
		path := filepath.Join(cfg.dir, strings.Replace(cfg.template, Placeholder, random, 1))

		exists, err := t.fs.Exists(path)
		if err != nil {
			return "", tempError(err, path, "failed to check temp path %q", path)
		}
		if !exists {
			return path, nil
		}
	}
}

// TempDir creates a directory at a fresh TempPath with mode 0700.
func (t *Tools) TempDir(opts ...TempOption) (string, error) {
	path, err := t.TempPath(opts...)
	if err != nil {
		return "", err
	}
	if err := t.fs.Mkdir(path, 0o700); err != nil {
		return "", tempError(err, path, "failed to create temp directory %q", path)
	}
	t.logger.Debug("created temp directory", "path", path)
	return path, nil
}

// TempFile creates an empty file at a fresh TempPath with mode 0600.
func (t *Tools) TempFile(opts ...TempOption) (string, error) {
	path, err := t.TempPath(opts...)
	if err != nil {
		return "", err
	}
	f, err := t.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", tempError(err, path, "failed to create temp file %q", path)
	}
	if err := f.Close(); err != nil {
		return "", tempError(err, path, "failed to create temp file %q", path)
	}
	t.logger.Debug("created temp file", "path", path)
	return path, nil
}

// randomHex returns randomLength hex characters from a sha256 digest of
// fresh random bytes.
func randomHex() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return digest.FromBytes(buf).Encoded()[:randomLength], nil
}

func tempError(err error, path, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	ctx := map[string]interface{}{"path": path}
	if err == nil {
		return errors.WithContextMap(errors.New(errors.CodeTemp, msg), ctx)
	}
	return errors.WrapWithContext(err, errors.CodeTemp, msg, ctx)
}
