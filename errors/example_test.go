package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/fileio/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeResource, "stream already released")
	fmt.Println(err.Error())
	// Output: [RESOURCE_ERROR] stream already released
}

func ExampleNewf() {
	err := errors.Newf(errors.CodeRead, "expected %d bytes, read %d", 8, 3)
	fmt.Println(err.Error())
	// Output: [READ_ERROR] expected 8 bytes, read 3
}

func ExampleWrap() {
	err := errors.Wrap(fs.ErrNotExist, errors.CodePath, `path "/missing" does not exist`)

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.Is(err, fs.ErrNotExist))
	// Output:
	// PATH_ERROR
	// true
}

func ExampleIsKind() {
	err := errors.New(errors.CodeTemp, "template has no placeholder")

	fmt.Println(errors.IsKind(err, errors.CodeTemp))
	fmt.Println(errors.IsKind(err, errors.CodePath))
	fmt.Println(errors.Is(err, errors.ErrPath))
	// Output:
	// true
	// true
	// true
}

func ExampleWithContext() {
	err := errors.New(errors.CodeWrite, "short write")
	err = errors.WithContext(err, "path", "/tmp/out.txt")

	fmt.Println(err.Context()["path"])
	// Output: /tmp/out.txt
}
