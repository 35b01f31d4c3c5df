package csv

import (
	"github.com/jmgilman/go/fileio/stream"
)

// File is a stream with row-oriented operations.
type File struct {
	*stream.Stream
}

// New wraps an existing stream. The File takes over the stream's ownership.
func New(s *stream.Stream) *File {
	return &File{Stream: s}
}

// Open opens the named file with an fopen-style mode, as stream.Open does.
func Open(path, mode string, opts ...stream.Option) (*File, error) {
	s, err := stream.Open(path, mode, opts...)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}
