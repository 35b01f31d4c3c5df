package stream

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/billy"
)

func TestOpen_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")

	w, err := Open(path, "w")
	require.NoError(t, err)
	_, err = w.WriteString("hello file")
	require.NoError(t, err)
	require.NoError(t, w.Release())

	r, err := Open(path, "r")
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	got, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "hello file", string(got))
	assert.Equal(t, path, r.Name())
}

func TestOpen_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	s, err := Open(path, "a")
	require.NoError(t, err)
	_, err = s.WriteString("two\n")
	require.NoError(t, err)
	require.NoError(t, s.Release())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))

	tests := []struct {
		name string
		path string
		mode string
	}{
		{"missing file read", filepath.Join(dir, "missing.txt"), "r"},
		{"missing parent write", filepath.Join(dir, "no", "such", "file.txt"), "w"},
		{"exclusive exists", existing, "x"},
		{"invalid mode", existing, "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path, tt.mode)
			require.Error(t, err)
			assert.Equal(t, errors.CodeResource, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.path)
			assert.Contains(t, err.Error(), tt.mode)

			var ioErr errors.IOError
			require.True(t, errors.As(err, &ioErr))
			assert.Equal(t, tt.path, ioErr.Context()["path"])
			assert.Equal(t, tt.mode, ioErr.Context()["mode"])
		})
	}
}

func TestOpen_WriteOnReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	s, err := Open(path, "r")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = s.WriteString("nope")
	assert.ErrorIs(t, err, errors.ErrWrite)
}

func TestOpen_WithMemoryFS(t *testing.T) {
	fsys := billy.NewMemory()

	s, err := Open("/notes.txt", "w+", WithFS(fsys), WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	_, err = s.WriteString("in memory")
	require.NoError(t, err)
	require.NoError(t, s.Release())

	ok, err := fsys.Exists("/notes.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpen_WithPerm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "private.txt")
	s, err := Open(path, "x", WithPerm(0o600))
	require.NoError(t, err)
	require.NoError(t, s.Release())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOpen_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	path := filepath.Join(t.TempDir(), "logged.txt")
	s, err := Open(path, "w", WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, s.Release())

	assert.Contains(t, buf.String(), "opened stream")
	assert.Contains(t, buf.String(), "released stream")
}
