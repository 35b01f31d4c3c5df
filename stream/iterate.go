package stream

import (
	stderrors "errors"
	"io"
	"iter"

	"github.com/jmgilman/go/fileio/errors"
)

// Iterate returns a lazy sequence of chunks of at most buffer bytes read from
// the current cursor. With bytes == 0 it runs to end-of-stream; otherwise it
// yields exactly bytes bytes, shrinking the last chunk, and ends with a read
// error if the stream ends first.
//
// The sequence advances the stream as it is pulled and is not restartable;
// calling Iterate again starts a new sequence at the cursor's new position.
//
//	for chunk, err := range s.Iterate(0, 4096) {
//	    if err != nil {
//	        return err
//	    }
//	    process(chunk)
//	}
func (s *Stream) Iterate(bytes, buffer int64) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if bytes < 0 {
			yield(nil, errors.Newf(errors.CodeRead, "invalid byte count %d for %q", bytes, s.name))
			return
		}
		if buffer <= 0 {
			yield(nil, errors.Newf(errors.CodeRead, "invalid buffer size %d for %q", buffer, s.name))
			return
		}

		var read int64
		for bytes == 0 || read < bytes {
			if err := s.check(); err != nil {
				yield(nil, err)
				return
			}

			want := buffer
			if bytes > 0 && bytes-read < want {
				want = bytes - read
			}
			chunk := make([]byte, want)
			n, err := io.ReadFull(s.handle, chunk)
			read += int64(n)
			if n > 0 && !yield(chunk[:n], nil) {
				return
			}

			switch {
			case err == nil:
				continue
			case stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF):
				if bytes > 0 {
					yield(nil, errors.WithContextMap(
						errors.Newf(errors.CodeRead, "expected %d bytes from %q, read %d", bytes, s.name, read),
						map[string]interface{}{"requested": bytes, "read": read}))
				}
				return
			default:
				yield(nil, errors.Wrapf(err, errors.CodeRead, "failed to read from %q after %d bytes", s.name, read))
				return
			}
		}
	}
}

// CopyFrom writes every chunk of source.Iterate(bytes, buffer) to s and
// returns the number of bytes written.
func (s *Stream) CopyFrom(source *Stream, bytes, buffer int64) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	var written int64
	for chunk, err := range source.Iterate(bytes, buffer) {
		if err != nil {
			return written, err
		}
		n, err := s.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	s.logger.Debug("copied stream", "source", source.Name(), "bytes", written)
	return written, nil
}
