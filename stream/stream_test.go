package stream

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fileio/errors"
)

func newTestMemory(t *testing.T, initial string) *Stream {
	t.Helper()
	s, err := NewMemory(initial, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStream_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("a"),
		[]byte("hello, world"),
		{0x00, 0xff, 0x10, 0x00},
		bytes.Repeat([]byte("0123456789"), 5000),
	}

	for _, input := range inputs {
		s := newTestMemory(t, "")

		n, err := s.Write(input)
		require.NoError(t, err)
		assert.Equal(t, len(input), n)

		require.NoError(t, s.Rewind())
		got, err := s.ReadN(0)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(got))
		assert.True(t, bytes.Equal(input, got))
	}
}

func TestStream_ReadN(t *testing.T) {
	const content = "abcdefghij"

	for n := 1; n <= len(content); n++ {
		s := newTestMemory(t, content)
		got, err := s.ReadN(n)
		require.NoError(t, err)
		assert.Equal(t, content[:n], string(got))
	}
}

func TestStream_ReadN_ShortRead(t *testing.T) {
	s := newTestMemory(t, "abc")

	_, err := s.ReadN(5)
	require.Error(t, err)
	assert.Equal(t, errors.CodeRead, errors.GetCode(err))
	assert.Contains(t, err.Error(), "expected 5 bytes")
	assert.Contains(t, err.Error(), "read 3")

	var ioErr errors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, 5, ioErr.Context()["requested"])
	assert.Equal(t, 3, ioErr.Context()["read"])
}

func TestStream_ReadN_Negative(t *testing.T) {
	s := newTestMemory(t, "abc")
	_, err := s.ReadN(-1)
	assert.ErrorIs(t, err, errors.ErrRead)
}

func TestStream_ReadAll_FromCursor(t *testing.T) {
	s := newTestMemory(t, "0123456789")

	_, err := s.Seek(4, io.SeekStart)
	require.NoError(t, err)
	got, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "456789", string(got))
}

func TestStream_Read_IOReader(t *testing.T) {
	s := newTestMemory(t, "abc")

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(buf[:n]))

	n, err = s.Read(buf)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestStream_SeekAndTell(t *testing.T) {
	s := newTestMemory(t, "0123456789")

	tests := []struct {
		name   string
		offset int64
		whence int
		want   int64
	}{
		{"start", 3, io.SeekStart, 3},
		{"current", 2, io.SeekCurrent, 5},
		{"current backwards", -4, io.SeekCurrent, 1},
		{"end", -2, io.SeekEnd, 8},
		{"end exact", 0, io.SeekEnd, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := s.Seek(tt.offset, tt.whence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)

			tell, err := s.Tell()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tell)
		})
	}
}

func TestStream_Seek_Errors(t *testing.T) {
	s := newTestMemory(t, "abc")
	_, err := s.Seek(0, 42)
	assert.ErrorIs(t, err, errors.ErrCursor)

	path := filepath.Join(t.TempDir(), "seek.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))
	f, err := Open(path, "r")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = f.Seek(-10, io.SeekStart)
	require.Error(t, err)
	assert.Equal(t, errors.CodeCursor, errors.GetCode(err))
}

func TestStream_EOF(t *testing.T) {
	s := newTestMemory(t, "ab")

	eof, err := s.EOF()
	require.NoError(t, err)
	assert.False(t, eof)

	// The probe does not consume the byte it read.
	pos, err := s.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	_, err = s.ReadN(2)
	require.NoError(t, err)

	eof, err = s.EOF()
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestStream_EOF_Empty(t *testing.T) {
	s := newTestMemory(t, "")
	eof, err := s.EOF()
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestStream_Size(t *testing.T) {
	content := bytes.Repeat([]byte("x"), DefaultChunkSize*2+17)
	s := newTestMemory(t, string(content))

	_, err := s.Seek(100, io.SeekStart)
	require.NoError(t, err)

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	eof, err := s.EOF()
	require.NoError(t, err)
	assert.True(t, eof)
}

func TestStream_Release(t *testing.T) {
	s, err := NewMemory("data", false)
	require.NoError(t, err)

	require.NoError(t, s.Release())
	assert.True(t, s.Released())

	err = s.Release()
	assert.ErrorIs(t, err, errors.ErrResource)

	// Close after an explicit release is a no-op.
	assert.NoError(t, s.Close())
}

func TestStream_UseAfterRelease(t *testing.T) {
	s, err := NewMemory("data", false)
	require.NoError(t, err)
	require.NoError(t, s.Release())

	ops := map[string]func() error{
		"Read":    func() error { _, err := s.Read(make([]byte, 1)); return err },
		"ReadN":   func() error { _, err := s.ReadN(1); return err },
		"ReadAll": func() error { _, err := s.ReadAll(); return err },
		"Write":   func() error { _, err := s.Write([]byte("x")); return err },
		"Seek":    func() error { _, err := s.Seek(0, io.SeekStart); return err },
		"Tell":    func() error { _, err := s.Tell(); return err },
		"EOF":     func() error { _, err := s.EOF(); return err },
		"Size":    func() error { _, err := s.Size(); return err },
		"Lock":    func() error { return s.Lock(true, true) },
		"Unlock":  func() error { return s.Unlock() },
		"Iterate": func() error {
			for _, err := range s.Iterate(0, 4) {
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.Error(t, err)
			assert.Equal(t, errors.CodeResource, errors.GetCode(err))
		})
	}
}

func TestStream_Close(t *testing.T) {
	s, err := NewMemory("data", false)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.True(t, s.Released())
	require.NoError(t, s.Close())
}

func TestStream_WriteString(t *testing.T) {
	s := newTestMemory(t, "")

	_, err := s.WriteString("hello")
	require.NoError(t, err)
	require.NoError(t, s.Rewind())

	got, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}
