package stream

import (
	stderrors "errors"

	"github.com/jmgilman/go/fileio/errors"
	"github.com/jmgilman/go/fileio/fs/core"
)

// Lock acquires an OS advisory lock on the stream, shared or exclusive.
// With nonBlocking set it fails immediately when the lock is held elsewhere.
// Streams without an OS descriptor (e.g. memory streams) cannot be locked.
func (s *Stream) Lock(exclusive, nonBlocking bool) error {
	if err := s.check(); err != nil {
		return err
	}
	locker, ok := s.handle.(core.Locker)
	if !ok {
		return errors.Newf(errors.CodeLock, "stream %q does not support locking", s.name)
	}

	kind := "shared"
	if exclusive {
		kind = "exclusive"
	}
	if err := locker.Lock(exclusive, nonBlocking); err != nil {
		if stderrors.Is(err, core.ErrUnsupported) {
			return errors.Wrapf(err, errors.CodeLock, "stream %q does not support locking", s.name)
		}
		return errors.WithContext(
			errors.Wrapf(err, errors.CodeLock, "failed to acquire %s lock on %q", kind, s.name),
			"non_blocking", nonBlocking)
	}
	s.logger.Debug("acquired lock", "kind", kind, "non_blocking", nonBlocking)
	return nil
}

// Unlock releases a lock acquired with Lock.
func (s *Stream) Unlock() error {
	if err := s.check(); err != nil {
		return err
	}
	locker, ok := s.handle.(core.Locker)
	if !ok {
		return errors.Newf(errors.CodeLock, "stream %q does not support locking", s.name)
	}
	if err := locker.Unlock(); err != nil {
		if stderrors.Is(err, core.ErrUnsupported) {
			return errors.Wrapf(err, errors.CodeLock, "stream %q does not support locking", s.name)
		}
		return errors.Wrapf(err, errors.CodeLock, "failed to release lock on %q", s.name)
	}
	s.logger.Debug("released lock")
	return nil
}
