package errors

// IOError extends the standard error interface with the structured
// information every fileio failure carries.
type IOError interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
