//go:build unix

package fsutil

import "golang.org/x/sys/unix"

// writable checks write access for the real user with access(2).
func writable(dir string) error {
	return unix.Access(dir, unix.W_OK)
}
