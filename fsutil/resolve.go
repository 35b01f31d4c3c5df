package fsutil

import (
	"github.com/jmgilman/go/fileio/errors"
)

// ResolveOption configures Resolve.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	recursive bool
}

// NonRecursive makes Resolve follow a single level of indirection.
func NonRecursive() ResolveOption {
	return func(c *resolveConfig) {
		c.recursive = false
	}
}

// Resolve returns the target of the symbolic link at link. By default it
// keeps following while the target is itself a link. Relative targets are
// resolved against the directory of the link that holds them. The final
// target need not exist.
func (t *Tools) Resolve(link string, opts ...ResolveOption) (string, error) {
	cfg := resolveConfig{recursive: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	ok, err := t.isSymlink(link)
	if err != nil {
		return "", pathError(err, link, "failed to resolve %q", link)
	}
	if !ok {
		return "", errors.WithContext(
			errors.Newf(errors.CodePath, "%q is not a symbolic link", link), "path", link)
	}

	seen := map[string]bool{link: true}
	current := link
	for {
		target, err := t.readlink(current)
		if err != nil {
			return "", err
		}
		if !cfg.recursive {
			return target, nil
		}

		ok, err := t.isSymlink(target)
		if err != nil {
			return "", pathError(err, target, "failed to resolve %q", target)
		}
		if !ok {
			t.logger.Debug("resolved link", "link", link, "target", target)
			return target, nil
		}
		if seen[target] {
			return "", errors.WithContext(
				errors.Newf(errors.CodePath, "symbolic link loop at %q while resolving %q", target, link), "path", link)
		}
		seen[target] = true
		current = target
	}
}
