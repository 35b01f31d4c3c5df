package stream

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/core"
)

// DefaultChunkSize is the chunk size Size reads with.
const DefaultChunkSize = 8192

// Stream is a byte stream over one exclusively owned handle.
type Stream struct {
	handle   core.File
	name     string
	released bool
	logger   *slog.Logger
}

// New wraps an open handle. The stream takes ownership of the handle and
// closes it on Release.
func New(handle core.File, opts ...Option) *Stream {
	cfg := newConfig(opts)
	return newStream(handle, handle.Name(), cfg.logger)
}

func newStream(handle core.File, name string, logger *slog.Logger) *Stream {
	return &Stream{
		handle: handle,
		name:   name,
		logger: logger.With("stream", name),
	}
}

// Name returns the name the stream was opened with.
func (s *Stream) Name() string {
	return s.name
}

// Released reports whether the stream has been released.
func (s *Stream) Released() bool {
	return s.released
}

// check fails with a resource error once the stream has been released.
func (s *Stream) check() error {
	if s.released {
		return errors.Newf(errors.CodeResource, "stream %q has already been released", s.name)
	}
	return nil
}

// Read implements io.Reader. End-of-stream is reported as a bare io.EOF;
// other failures are read errors.
func (s *Stream) Read(p []byte) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	n, err := s.handle.Read(p)
	if err != nil && !stderrors.Is(err, io.EOF) {
		return n, errors.Wrapf(err, errors.CodeRead, "failed to read from %q", s.name)
	}
	return n, err
}

// ReadN reads exactly n bytes. With n == 0 it reads to end-of-stream.
// Fewer than n available bytes is a read error naming both counts.
func (s *Stream) ReadN(n int) ([]byte, error) {
	if n == 0 {
		return s.ReadAll()
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Newf(errors.CodeRead, "invalid byte count %d for %q", n, s.name)
	}

	buf := make([]byte, n)
	got, err := io.ReadFull(s.handle, buf)
	if err != nil {
		if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.WithContextMap(
				errors.Newf(errors.CodeRead, "expected %d bytes from %q, read %d", n, s.name, got),
				map[string]interface{}{"requested": n, "read": got},
			)
		}
		return nil, errors.Wrapf(err, errors.CodeRead, "failed to read %d bytes from %q", n, s.name)
	}
	return buf, nil
}

// ReadAll reads from the cursor to end-of-stream.
func (s *Stream) ReadAll() ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(s.handle)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeRead, "failed to read %q to end", s.name)
	}
	return data, nil
}

// Write implements io.Writer. Anything short of committing every byte is a
// write error naming both counts.
func (s *Stream) Write(data []byte) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	n, err := s.handle.Write(data)
	if err != nil {
		return n, errors.WrapWithContext(err, errors.CodeWrite,
			fmt.Sprintf("wrote %d of %d bytes to %q", n, len(data), s.name),
			map[string]interface{}{"expected": len(data), "written": n})
	}
	if n != len(data) {
		return n, errors.WithContextMap(
			errors.Newf(errors.CodeWrite, "wrote %d of %d bytes to %q", n, len(data), s.name),
			map[string]interface{}{"expected": len(data), "written": n})
	}
	return n, nil
}

// WriteString writes the bytes of str.
func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Seek implements io.Seeker with io.SeekStart, io.SeekCurrent and
// io.SeekEnd addressing.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, errors.Newf(errors.CodeCursor, "invalid whence %d for %q", whence, s.name)
	}
	pos, err := s.handle.Seek(offset, whence)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeCursor, "failed to seek %q to offset %d (whence %d)", s.name, offset, whence)
	}
	return pos, nil
}

// Rewind moves the cursor to the start of the stream.
func (s *Stream) Rewind() error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// Tell returns the current cursor offset.
func (s *Stream) Tell() (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	pos, err := s.handle.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeCursor, "failed to determine cursor position of %q", s.name)
	}
	return pos, nil
}

// EOF reports whether the cursor is at end-of-stream. It reads one byte and,
// if one was read, seeks back over it.
func (s *Stream) EOF() (bool, error) {
	if err := s.check(); err != nil {
		return false, err
	}
	var buf [1]byte
	n, err := s.handle.Read(buf[:])
	if n == 0 {
		if err == nil {
			return false, nil
		}
		if stderrors.Is(err, io.EOF) {
			return true, nil
		}
		return false, errors.Wrapf(err, errors.CodeRead, "failed to probe end of %q", s.name)
	}
	if _, err := s.handle.Seek(-1, io.SeekCurrent); err != nil {
		return false, errors.Wrapf(err, errors.CodeCursor, "failed to restore cursor of %q after probe", s.name)
	}
	return false, nil
}

// Size rewinds the stream and reads it to the end in DefaultChunkSize
// chunks, returning the number of bytes read. The cursor is left at
// end-of-stream. Not every stream has filesystem metadata, so the size is
// always counted.
func (s *Stream) Size() (int64, error) {
	if err := s.Rewind(); err != nil {
		return 0, err
	}
	n, err := io.CopyBuffer(io.Discard, onlyReader{s.handle}, make([]byte, DefaultChunkSize))
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeRead, "failed to size %q after %d bytes", s.name, n)
	}
	return n, nil
}

// onlyReader hides WriterTo so CopyBuffer uses the supplied chunk buffer.
type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) {
	return o.r.Read(p)
}

// Release closes the handle. Releasing an already released stream is a
// resource error.
func (s *Stream) Release() error {
	if err := s.check(); err != nil {
		return err
	}
	s.released = true
	if err := s.handle.Close(); err != nil {
		return errors.Wrapf(err, errors.CodeResource, "failed to release %q", s.name)
	}
	s.logger.Debug("released stream")
	return nil
}

// Close releases the stream if it is still held. It is safe to defer after
// an explicit Release.
func (s *Stream) Close() error {
	if s.released {
		return nil
	}
	return s.Release()
}

// Compile-time interface checks.
var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
	_ io.StringWriter    = (*Stream)(nil)
)
