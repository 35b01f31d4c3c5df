package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, errors.ErrLock) {
//	    // Another process holds the lock
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var ioErr IOError
//	if errors.As(err, &ioErr) {
//	    code := ioErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not an IOError.
//
// The code is taken from the outermost IOError in the chain.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var ioErr IOError
	if stderrors.As(err, &ioErr) {
		return ioErr.Code()
	}

	return CodeUnknown
}
