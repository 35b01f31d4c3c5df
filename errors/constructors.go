package errors

import "fmt"

// New creates a new IOError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeResource, "stream already released")
func New(code ErrorCode, message string) IOError {
	return &ioError{
		code:    code,
		message: message,
	}
}

// Newf creates a new IOError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeWrite, "wrote %d of %d bytes", n, len(data))
func Newf(code ErrorCode, format string, args ...interface{}) IOError {
	return &ioError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
