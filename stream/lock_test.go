package stream

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileio/errors"
)

func lockTarget(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("advisory locks are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("locked"), 0o644))
	return path
}

func TestStream_Lock_ExclusiveConflict(t *testing.T) {
	path := lockTarget(t)

	first, err := Open(path, "r+")
	require.NoError(t, err)
	defer func() { _ = first.Close() }()
	second, err := Open(path, "r+")
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	require.NoError(t, first.Lock(true, true))

	err = second.Lock(true, true)
	require.Error(t, err)
	assert.Equal(t, errors.CodeLock, errors.GetCode(err))
	assert.Contains(t, err.Error(), "exclusive")

	require.NoError(t, first.Unlock())
	require.NoError(t, second.Lock(true, true))
	require.NoError(t, second.Unlock())
}

func TestStream_Lock_Shared(t *testing.T) {
	path := lockTarget(t)

	first, err := Open(path, "r")
	require.NoError(t, err)
	defer func() { _ = first.Close() }()
	second, err := Open(path, "r")
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	require.NoError(t, first.Lock(false, true))
	require.NoError(t, second.Lock(false, true))
}

func TestStream_Lock_ReleasedOnClose(t *testing.T) {
	path := lockTarget(t)

	first, err := Open(path, "r+")
	require.NoError(t, err)
	require.NoError(t, first.Lock(true, true))
	require.NoError(t, first.Release())

	second, err := Open(path, "r+")
	require.NoError(t, err)
	defer func() { _ = second.Close() }()
	assert.NoError(t, second.Lock(true, true))
}
