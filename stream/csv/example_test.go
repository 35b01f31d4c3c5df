package csv_test

import (
	"fmt"

	"github.com/jmgilman/go/fileio/stream"
	"github.com/jmgilman/go/fileio/stream/csv"
)

func ExampleFile_WriteRow() {
	s, err := stream.NewMemory("", false)
	if err != nil {
		panic(err)
	}
	f := csv.New(s)
	defer f.Close()

	_, _ = f.WriteRow([]string{"a", "beta test", "123", `a "gamma" test`})
	_ = f.Rewind()

	row, _ := f.ReadRow()
	for _, field := range row {
		fmt.Println(field)
	}
	// Output:
	// a
	// beta test
	// 123
	// a "gamma" test
}
