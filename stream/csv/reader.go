package csv

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"

	"github.com/jmgilman/go/fileio/errors"
)

// lineChunk is how many bytes readLine asks the stream for at a time.
const lineChunk = 1024

// ReadRow reads the next record starting at the cursor and leaves the cursor
// right after it.
//
// A blank line returns a nil row and no error. Reaching the end of the stream
// before any byte of a record is a read error wrapping io.EOF.
func (f *File) ReadRow(opts ...Option) ([]string, error) {
	d, err := newDialect(opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeRead, "invalid dialect for %q", f.Name())
	}

	var record []byte
	for {
		line, err := f.readLine()
		if err != nil {
			if stderrors.Is(err, io.EOF) && len(record) > 0 {
				fields, _ := d.parse(string(trimEOL(record)))
				return fields, nil
			}
			if stderrors.Is(err, io.EOF) {
				return nil, errors.Wrapf(err, errors.CodeRead, "no more rows in %q", f.Name())
			}
			return nil, err
		}
		record = append(record, line...)

		text := trimEOL(record)
		if d.maxLength > 0 && len(text) > d.maxLength {
			return nil, errors.WithContextMap(
				errors.Newf(errors.CodeRead, "record in %q exceeds %d bytes", f.Name(), d.maxLength),
				map[string]interface{}{"max_length": d.maxLength, "length": len(text)})
		}
		if len(text) == 0 {
			return nil, nil
		}

		fields, complete := d.parse(string(text))
		if complete || !bytes.HasSuffix(line, []byte("\n")) {
			return fields, nil
		}
	}
}

// readLine reads up to and including the next '\n'. Bytes read past it are
// given back by moving the cursor. At end-of-stream it returns whatever is
// left, or a bare io.EOF if nothing is.
func (f *File) readLine() ([]byte, error) {
	var line []byte
	buf := make([]byte, lineChunk)
	for {
		n, err := f.Stream.Read(buf)
		if n > 0 {
			if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
				line = append(line, buf[:i+1]...)
				if rest := n - i - 1; rest > 0 {
					if _, err := f.Seek(-int64(rest), io.SeekCurrent); err != nil {
						return nil, err
					}
				}
				return line, nil
			}
			line = append(line, buf[:n]...)
		}
		if err != nil {
			if stderrors.Is(err, io.EOF) && len(line) > 0 {
				return line, nil
			}
			return nil, err
		}
	}
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	return bytes.TrimSuffix(b, []byte("\r"))
}

// parse splits one record into fields. It reports false when the record ends
// inside a quoted field; the fields parsed so far are still returned.
func (d dialect) parse(text string) ([]string, bool) {
	var (
		fields []string
		field  strings.Builder
		i      int
	)
	for {
		field.Reset()

		if i < len(text) && text[i] == d.quote {
			i++
			closed := false
		quoted:
			for i < len(text) {
				c := text[i]
				switch {
				case d.escapes(c):
					field.WriteByte(c)
					i++
					if i < len(text) {
						field.WriteByte(text[i])
						i++
					}
				case c == d.quote:
					if i+1 < len(text) && text[i+1] == d.quote {
						field.WriteByte(c)
						i += 2
						continue
					}
					i++
					closed = true
					break quoted
				default:
					field.WriteByte(c)
					i++
				}
			}
			if !closed {
				return append(fields, field.String()), false
			}
		}

		// Anything between a closing quote and the delimiter is kept as is.
		for i < len(text) && text[i] != d.delimiter {
			field.WriteByte(text[i])
			i++
		}
		fields = append(fields, field.String())

		if i >= len(text) {
			return fields, true
		}
		i++
	}
}
