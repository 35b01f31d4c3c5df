package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := os.Remove(path); err != nil {
//	    return errors.Wrap(err, errors.CodePath, "failed to remove "+path)
//	}
func Wrap(err error, code ErrorCode, message string) IOError {
	if err == nil {
		return nil
	}

	return &ioError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if _, err := f.Seek(offset, whence); err != nil {
//	    return errors.Wrapf(err, errors.CodeCursor, "failed to seek to %d", offset)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) IOError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err != nil {
//	    return errors.WrapWithContext(err, errors.CodeResource, "failed to open file", map[string]interface{}{
//	        "path": path,
//	        "mode": mode,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) IOError {
	if err == nil {
		return nil
	}

	return &ioError{
		code:    code,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
