package errors

// kind is a sentinel matching every IOError of a given code or of a code
// that specializes it.
type kind ErrorCode

func (k kind) Error() string {
	return string(k)
}

// Kind sentinels for use with errors.Is.
var (
	ErrPath     error = kind(CodePath)
	ErrTemp     error = kind(CodeTemp)
	ErrResource error = kind(CodeResource)
	ErrRead     error = kind(CodeRead)
	ErrWrite    error = kind(CodeWrite)
	ErrCursor   error = kind(CodeCursor)
	ErrLock     error = kind(CodeLock)
)

// IsKind reports whether any IOError in err's chain has the given code or a
// code specializing it.
func IsKind(err error, code ErrorCode) bool {
	return Is(err, kind(code))
}
