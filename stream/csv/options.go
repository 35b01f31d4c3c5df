package csv

import "fmt"

// Option configures the dialect of a single ReadRow or WriteRow call.
type Option func(*dialect)

type dialect struct {
	delimiter byte
	quote     byte
	escape    byte
	maxLength int
}

func newDialect(opts []Option) (dialect, error) {
	d := dialect{
		delimiter: ',',
		quote:     '"',
		escape:    '\\',
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d, d.validate()
}

func (d dialect) validate() error {
	switch {
	case d.delimiter == d.quote:
		return fmt.Errorf("delimiter and quote must differ, both are %q", d.delimiter)
	case d.delimiter == '\n' || d.delimiter == '\r':
		return fmt.Errorf("invalid delimiter %q", d.delimiter)
	case d.quote == '\n' || d.quote == '\r':
		return fmt.Errorf("invalid quote %q", d.quote)
	case d.maxLength < 0:
		return fmt.Errorf("invalid maximum length %d", d.maxLength)
	}
	return nil
}

// escapes reports whether c is the active escape character.
func (d dialect) escapes(c byte) bool {
	return d.escape != 0 && d.escape != d.quote && c == d.escape
}

// WithDelimiter sets the field separator. Defaults to ','.
func WithDelimiter(c byte) Option {
	return func(d *dialect) {
		d.delimiter = c
	}
}

// WithQuote sets the enclosure character. Defaults to '"'.
func WithQuote(c byte) Option {
	return func(d *dialect) {
		d.quote = c
	}
}

// WithEscape sets the escape character. Defaults to '\\'; 0 disables
// escaping.
func WithEscape(c byte) Option {
	return func(d *dialect) {
		d.escape = c
	}
}

// WithMaxLength limits the length of a record read by ReadRow, line
// terminator excluded. Zero means unlimited.
func WithMaxLength(n int) Option {
	return func(d *dialect) {
		d.maxLength = n
	}
}
