package errors

import "fmt"

// ioError is the concrete implementation of IOError.
// It is private to enforce construction through package functions.
type ioError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *ioError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *ioError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *ioError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *ioError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *ioError) Unwrap() error {
	return e.cause
}

// Is matches kind sentinels against the error code and its parents.
func (e *ioError) Is(target error) bool {
	k, ok := target.(kind)
	if !ok {
		return false
	}
	return e.code.Is(ErrorCode(k))
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
