// Package errors provides the typed error taxonomy used by every fileio
// package.
//
// Each failure reported by this module is an IOError carrying an error code
// (its kind), a human-readable message naming the offending path, value or
// byte counts, optional context metadata, and the underlying cause. IOError
// stays compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// # Kinds
//
//   - CodePath: a path does not exist or a path-level operation failed
//   - CodeTemp: temp path/file/dir generation or creation failed (a path error)
//   - CodeResource: opening or releasing a handle failed, or it was already released
//   - CodeRead: a read did not return the expected data or byte count
//   - CodeWrite: a write did not commit the expected byte count
//   - CodeCursor: seek/tell failed
//   - CodeLock: locking is unsupported, or acquisition/release failed
//
// # Matching
//
// Every kind has a sentinel that matches errors of that kind and of its child
// kinds:
//
//	if errors.Is(err, errors.ErrPath) {
//	    // also true for temp errors
//	}
//
// The code of the outermost IOError in a chain is available via GetCode:
//
//	if errors.GetCode(err) == errors.CodeLock {
//	    // lock contention
//	}
//
// # Creating errors
//
//	err := errors.Newf(errors.CodeRead, "expected %d bytes, read %d", want, got)
//
//	if err := f.Close(); err != nil {
//	    return errors.Wrapf(err, errors.CodeResource, "failed to release %q", name)
//	}
//
// Errors are immutable once created. Context maps are copied on the way in
// and on the way out.
package errors
