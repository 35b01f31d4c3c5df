//go:build !unix

package fsutil

import (
	"fmt"
	"os"
)

// writable approximates access(2) with the owner write bit.
func writable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o200 == 0 {
		return fmt.Errorf("%s: permission denied", dir)
	}
	return nil
}
