package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/billy"
)

func TestDuplicate_Tree(t *testing.T) {
	base := t.TempDir()
	from := filepath.Join(base, "from")
	to := filepath.Join(base, "to")
	writeTree(t, from, map[string]string{
		"a.txt":      "alpha",
		"sub/b.txt":  "beta",
		"sub/deep/c": "gamma",
		"empty/":     "",
	})

	require.NoError(t, Duplicate(from, to))

	for name, want := range map[string]string{
		"a.txt":      "alpha",
		"sub/b.txt":  "beta",
		"sub/deep/c": "gamma",
	} {
		got, err := os.ReadFile(filepath.Join(to, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
	assert.DirExists(t, filepath.Join(to, "empty"))
}

func TestDuplicate_File(t *testing.T) {
	base := t.TempDir()
	from := filepath.Join(base, "from.txt")
	to := filepath.Join(base, "to.txt")
	require.NoError(t, os.WriteFile(from, []byte("content"), 0o640))

	require.NoError(t, Duplicate(from, to))

	got, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(to)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}
}

func TestDuplicate_DirectoryPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	base := t.TempDir()
	from := filepath.Join(base, "from")
	require.NoError(t, os.Mkdir(from, 0o700))
	require.NoError(t, os.Chmod(from, 0o700))
	to := filepath.Join(base, "to")

	require.NoError(t, Duplicate(from, to))

	info, err := os.Stat(to)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestDuplicate_Depth(t *testing.T) {
	base := t.TempDir()
	from := filepath.Join(base, "from")
	writeTree(t, from, map[string]string{
		"a.txt":     "a",
		"sub/b.txt": "b",
	})

	t.Run("zero copies nothing", func(t *testing.T) {
		to := filepath.Join(base, "zero")
		require.NoError(t, Duplicate(from, to, WithDepth(0)))
		assert.NoDirExists(t, to)
	})

	t.Run("one copies the top-level entry only", func(t *testing.T) {
		to := filepath.Join(base, "one")
		require.NoError(t, Duplicate(from, to, WithDepth(1)))
		assert.DirExists(t, to)
		assert.NoFileExists(t, filepath.Join(to, "a.txt"))
		assert.NoDirExists(t, filepath.Join(to, "sub"))
	})

	t.Run("two stops above grandchildren", func(t *testing.T) {
		to := filepath.Join(base, "two")
		require.NoError(t, Duplicate(from, to, WithDepth(2)))
		assert.FileExists(t, filepath.Join(to, "a.txt"))
		assert.DirExists(t, filepath.Join(to, "sub"))
		assert.NoFileExists(t, filepath.Join(to, "sub", "b.txt"))
	})
}

func TestDuplicate_NoOverwrite(t *testing.T) {
	base := t.TempDir()
	from := filepath.Join(base, "from.txt")
	to := filepath.Join(base, "to.txt")
	require.NoError(t, os.WriteFile(from, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(to, []byte("old"), 0o644))

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(to, past, past))

	require.NoError(t, Duplicate(from, to, WithOverwrite(false)))

	info, err := os.Stat(to)
	require.NoError(t, err)
	assert.True(t, past.Equal(info.ModTime()), "modification time changed to %v", info.ModTime())

	got, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}

func TestDuplicate_Overwrite(t *testing.T) {
	base := t.TempDir()
	from := filepath.Join(base, "from.txt")
	to := filepath.Join(base, "to.txt")
	require.NoError(t, os.WriteFile(from, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(to, []byte("older content"), 0o644))

	require.NoError(t, Duplicate(from, to))

	got, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestDuplicate_Errors(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	dir := filepath.Join(base, "dir")
	require.NoError(t, os.Mkdir(dir, 0o755))

	tests := []struct {
		name     string
		from, to string
	}{
		{"missing destination parent", file, filepath.Join(base, "no", "such", "copy.txt")},
		{"missing source", filepath.Join(base, "missing"), filepath.Join(base, "copy")},
		{"directory over file", dir, file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Duplicate(tt.from, tt.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrPath)
		})
	}
}

func TestDuplicate_Memory(t *testing.T) {
	fsys := billy.NewMemory()
	tools := New(fsys)

	require.NoError(t, fsys.MkdirAll("/src/sub", 0o755))
	f, err := fsys.OpenFile("/src/sub/file", os.O_WRONLY|os.O_CREATE, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte("memory"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, tools.Duplicate("/src", "/dst"))

	info, err := fsys.Stat("/dst/sub")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	g, err := fsys.OpenFile("/dst/sub/file", os.O_RDONLY, 0)
	require.NoError(t, err)
	defer func() { _ = g.Close() }()
	buf := make([]byte, 16)
	n, _ := g.Read(buf)
	assert.Equal(t, "memory", string(buf[:n]))
}
