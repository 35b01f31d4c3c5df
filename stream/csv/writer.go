package csv

import (
	"strings"

	"github.com/jmgilman/go/fileio/errors"
)

// WriteRow writes fields as one record terminated by '\n' and returns the
// number of bytes written.
//
// A field is quoted when it contains the delimiter, the quote or escape
// character, a space, a tab, or a line break. Quotes inside a quoted field are
// doubled unless they follow the escape character.
func (f *File) WriteRow(fields []string, opts ...Option) (int, error) {
	d, err := newDialect(opts)
	if err != nil {
		return 0, errors.Wrapf(err, errors.CodeWrite, "invalid dialect for %q", f.Name())
	}
	return f.WriteString(d.format(fields))
}

func (d dialect) format(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(d.delimiter)
		}
		if !d.needsQuotes(field) {
			b.WriteString(field)
			continue
		}

		b.WriteByte(d.quote)
		escaped := false
		for j := 0; j < len(field); j++ {
			c := field[j]
			switch {
			case d.escapes(c):
				escaped = true
			case !escaped && c == d.quote:
				b.WriteByte(d.quote)
			default:
				escaped = false
			}
			b.WriteByte(c)
		}
		b.WriteByte(d.quote)
	}
	b.WriteByte('\n')
	return b.String()
}

func (d dialect) needsQuotes(field string) bool {
	for j := 0; j < len(field); j++ {
		switch c := field[j]; c {
		case d.delimiter, d.quote, ' ', '\t', '\r', '\n':
			return true
		default:
			if d.escape != 0 && c == d.escape {
				return true
			}
		}
	}
	return false
}
