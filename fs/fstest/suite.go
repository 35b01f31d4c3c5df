// Package fstest provides a conformance test suite for core.FS providers.
//
// Provider packages run the suite from their own tests:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuiteWithConfig(t, func() core.FS {
//	        return myprovider.New()
//	    }, fstest.MemoryTestConfig())
//	}
//
// Each test group receives a fresh filesystem from newFS and works below the
// directory returned by FSTestConfig.BaseDir.
package fstest

import (
	"path"
	"runtime"
	"slices"
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// FSTestConfig configures the test suite to match provider capabilities.
type FSTestConfig struct {
	// BaseDir returns the directory a test group works in. Providers rooted
	// at the real filesystem should return t.TempDir(). Nil means "/".
	BaseDir func(t *testing.T) string

	// Locking indicates file handles support advisory locks. When false,
	// Lock must fail with core.ErrUnsupported.
	Locking bool

	// Metadata indicates Chmod and Chtimes are applied. When false, they may
	// also fail with core.ErrUnsupported.
	Metadata bool

	// SkipTests lists test names to skip, e.g. "SymlinkFS/Broken".
	SkipTests []string
}

// LocalTestConfig returns configuration for providers backed by the local
// disk.
func LocalTestConfig() FSTestConfig {
	return FSTestConfig{
		BaseDir:  func(t *testing.T) string { return t.TempDir() },
		Locking:  runtime.GOOS != "windows",
		Metadata: true,
	}
}

// MemoryTestConfig returns configuration for in-memory providers.
func MemoryTestConfig() FSTestConfig {
	return FSTestConfig{}
}

func (c FSTestConfig) base(t *testing.T) string {
	t.Helper()
	if c.BaseDir == nil {
		return "/"
	}
	return c.BaseDir(t)
}

func (c FSTestConfig) skip(t *testing.T, name string) {
	t.Helper()
	if slices.Contains(c.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
	}
}

// group runs one named test with a fresh filesystem and base directory.
func (c FSTestConfig) group(
	t *testing.T,
	name string,
	newFS func() core.FS,
	run func(t *testing.T, filesystem core.FS, base string),
) {
	t.Run(name, func(t *testing.T) {
		c.skip(t, name)
		run(t, newFS(), c.base(t))
	})
}

// TestSuite runs the conformance tests with MemoryTestConfig.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, MemoryTestConfig())
}

// TestSuiteWithConfig runs every conformance test group.
// The newFS function must return a filesystem safe to modify below the
// configured base directory.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	config.group(t, "ReadFS", newFS, func(t *testing.T, f core.FS, base string) {
		TestReadFS(t, f, base, config)
	})
	config.group(t, "WriteFS", newFS, func(t *testing.T, f core.FS, base string) {
		TestWriteFS(t, f, base, config)
	})
	config.group(t, "ManageFS", newFS, func(t *testing.T, f core.FS, base string) {
		TestManageFS(t, f, base, config)
	})
	config.group(t, "MetadataFS", newFS, func(t *testing.T, f core.FS, base string) {
		TestMetadataFS(t, f, base, config)
	})
	config.group(t, "SymlinkFS", newFS, func(t *testing.T, f core.FS, base string) {
		TestSymlinkFS(t, f, base, config)
	})
	config.group(t, "FileCapabilities", newFS, func(t *testing.T, f core.FS, base string) {
		TestFileCapabilities(t, f, base, config)
	})
}

// run executes a subtest unless it is listed in SkipTests under group.
func (c FSTestConfig) run(t *testing.T, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		c.skip(t, group+"/"+name)
		fn(t)
	})
}

func join(base string, elem ...string) string {
	return path.Join(append([]string{base}, elem...)...)
}
