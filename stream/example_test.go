package stream_test

import (
	"fmt"
	"io"

	"github.com/jmgilman/go/fileio/stream"
)

func ExampleNewMemory() {
	s, err := stream.NewMemory("hello, world", false)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	head, _ := s.ReadN(5)
	fmt.Println(string(head))

	_, _ = s.Seek(-5, io.SeekEnd)
	tail, _ := s.ReadAll()
	fmt.Println(string(tail))
	// Output:
	// hello
	// world
}

func ExampleStream_Iterate() {
	s, err := stream.NewMemory("abcdefgh", false)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	for chunk, err := range s.Iterate(0, 3) {
		if err != nil {
			panic(err)
		}
		fmt.Println(string(chunk))
	}
	// Output:
	// abc
	// def
	// gh
}
