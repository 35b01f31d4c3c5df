package errors

// ErrorCode represents a kind of I/O failure.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// CodePath indicates a named path does not exist or a path-level
	// operation (remove, copy, metadata, resolve) failed.
	CodePath ErrorCode = "PATH_ERROR"

	// CodeTemp indicates temp path, file or directory generation failed.
	// It is a specialization of CodePath.
	CodeTemp ErrorCode = "TEMP_ERROR"

	// CodeResource indicates opening or releasing a handle failed, or the
	// handle was used after release.
	CodeResource ErrorCode = "RESOURCE_ERROR"

	// CodeRead indicates a read did not return the expected data.
	CodeRead ErrorCode = "READ_ERROR"

	// CodeWrite indicates a write did not commit the expected byte count.
	CodeWrite ErrorCode = "WRITE_ERROR"

	// CodeCursor indicates a seek or tell failed.
	CodeCursor ErrorCode = "CURSOR_ERROR"

	// CodeLock indicates locking is unsupported or could not be acquired
	// or released.
	CodeLock ErrorCode = "LOCK_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// parents maps a code to the more general code it specializes.
var parents = map[ErrorCode]ErrorCode{
	CodeTemp: CodePath,
}

// Parent returns the code this code specializes, or the empty code if it
// has none.
func (c ErrorCode) Parent() ErrorCode {
	return parents[c]
}

// Is reports whether c equals target or specializes it.
func (c ErrorCode) Is(target ErrorCode) bool {
	for code := c; code != ""; code = code.Parent() {
		if code == target {
			return true
		}
	}
	return false
}
