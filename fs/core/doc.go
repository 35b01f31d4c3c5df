// Package core defines the handle and filesystem contracts the fileio
// packages are written against.
//
// The stream package owns a File; the fsutil package walks an FS. Concrete
// providers live in separate packages (see fs/billy) so callers can swap the
// local filesystem for an in-memory one without touching stream or tree code.
//
// # Capabilities
//
// Not every handle can do everything. Capabilities that depend on the
// backing resource are optional interfaces checked with a type assertion:
//
//	if l, ok := file.(core.Locker); ok {
//	    err := l.Lock(true, true)
//	}
//
// Providers that implement a capability method but cannot honour it for a
// particular handle return ErrUnsupported.
package core
