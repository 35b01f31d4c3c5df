package stream

import (
	"fmt"
	"os"
	"strings"
)

// ParseMode converts an fopen-style mode string into os.OpenFile flags.
//
//	r   read                        r+  read/write
//	w   write, create, truncate     w+  read/write, create, truncate
//	a   append, create              a+  read/append, create
//	x   write, must not exist       x+  read/write, must not exist
//	c   write, create               c+  read/write, create
//
// The modifiers "b" and "t" are accepted and ignored.
func ParseMode(mode string) (int, error) {
	base := strings.NewReplacer("b", "", "t", "").Replace(mode)

	var flag int
	switch strings.TrimSuffix(base, "+") {
	case "r":
		flag = 0
	case "w":
		flag = os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_CREATE | os.O_APPEND
	case "x":
		flag = os.O_CREATE | os.O_EXCL
	case "c":
		flag = os.O_CREATE
	default:
		return 0, fmt.Errorf("invalid mode %q", mode)
	}

	switch {
	case strings.HasSuffix(base, "+"):
		flag |= os.O_RDWR
	case base == "r":
		flag |= os.O_RDONLY
	default:
		flag |= os.O_WRONLY
	}

	return flag, nil
}
