// Package stream provides a byte stream over a single, exclusively owned
// file handle where every failure is a typed error from the fileio errors
// package.
//
// Streams come from three constructors:
//
//	s, err := stream.Open("data.bin", "r+")        // a named file
//	s, err := stream.NewMemory("seed", false)      // an in-memory buffer
//	s := stream.New(handle)                        // any core.File
//
// A Stream implements io.Reader, io.Writer, io.Seeker and io.Closer, and adds
// exact-length reads (ReadN), end-of-stream checks (EOF), read-based sizing
// (Size), chunked iteration (Iterate, CopyFrom) and advisory locking (Lock,
// Unlock).
//
// # Release
//
// Release closes the handle and fails when called a second time. Close is the
// scoped form for defer: it releases a stream that is still held and does
// nothing otherwise.
//
//	s, err := stream.Open(path, "w")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
// Every operation on a released stream fails with a resource error.
//
// # Concurrency
//
// A Stream is not safe for concurrent use. EOF reads one byte and seeks back,
// so it is not atomic with respect to other writers of the same file.
package stream
