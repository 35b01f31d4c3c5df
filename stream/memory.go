package stream

import (
	"io"
	"os"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/billy"
	"github.com/jmgilman/go/fileio/fs/core"
)

// memoryName is the name given to in-memory streams.
const memoryName = "memory"

// NewMemory returns a stream backed by a private in-memory buffer seeded with
// initial. In append mode every write goes to the end of the buffer and the
// cursor starts at the end; otherwise the cursor starts at zero so the seed
// is immediately readable.
//
// Memory streams cannot be locked.
func NewMemory(initial string, appendMode bool, opts ...Option) (*Stream, error) {
	cfg := newConfig(opts)

	flag := os.O_RDWR | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flag |= os.O_APPEND
	}
	handle, err := billy.NewMemory().OpenFile(memoryName, flag, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeResource, "failed to allocate memory stream")
	}
	if appendMode {
		handle = appendFile{handle}
	}

	s := newStream(handle, memoryName, cfg.logger)
	if _, err := s.WriteString(initial); err != nil {
		_ = s.Close()
		return nil, err
	}
	if !appendMode {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			_ = s.Close()
			return nil, err
		}
	}

	cfg.logger.Debug("allocated memory stream", "size", len(initial), "append", appendMode)
	return s, nil
}

// appendFile moves to the end before every write. memfs only honours
// O_APPEND when the file is opened.
type appendFile struct {
	core.File
}

func (a appendFile) Write(p []byte) (int, error) {
	if _, err := a.File.Seek(0, io.SeekEnd); err != nil {
		return 0, err
	}
	return a.File.Write(p)
}
