// Package csv reads and writes delimited rows over a stream.Stream.
//
// A File is a stream with two extra operations, ReadRow and WriteRow. Rows
// use RFC 4180 style quoting with a configurable delimiter, quote and escape
// character (defaults ',', '"' and '\\').
//
// Quoted fields may span lines. Inside a quoted field a doubled quote stands
// for one quote character, and an escape character protects the character
// after it; both are kept in the field as written. A blank line reads as a
// nil row so it can be told apart from a row holding one empty field.
//
//	f, err := csv.Open("people.csv", "w+")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	if _, err := f.WriteRow([]string{"name", "age"}); err != nil {
//	    return err
//	}
//	if err := f.Rewind(); err != nil {
//	    return err
//	}
//	row, err := f.ReadRow()
package csv
