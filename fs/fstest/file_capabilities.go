package fstest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/fileio/fs/core"
)

// TestFileCapabilities tests read, write and seek on handles, and the
// advisory locking capability.
func TestFileCapabilities(t *testing.T, filesystem core.FS, base string, config FSTestConfig) {
	config.run(t, "FileCapabilities", "ReadWriteSeek", func(t *testing.T) {
		name := join(base, "rw.txt")
		f, err := filesystem.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		if f.Name() != name {
			t.Errorf("Name() = %q, want %q", f.Name(), name)
		}
		if _, err := f.Write([]byte("0123456789")); err != nil {
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		pos, err := f.Seek(3, io.SeekStart)
		if err != nil || pos != 3 {
			t.Fatalf("Seek(3, SeekStart) = %d, %v; want 3, nil", pos, err)
		}
		buf := make([]byte, 4)
		if _, err := io.ReadFull(f, buf); err != nil {
			t.Fatalf("ReadFull(): got error %v, want nil", err)
		}
		if !bytes.Equal(buf, []byte("3456")) {
			t.Errorf("read %q after seek, want %q", buf, "3456")
		}
		pos, err = f.Seek(-2, io.SeekEnd)
		if err != nil || pos != 8 {
			t.Errorf("Seek(-2, SeekEnd) = %d, %v; want 8, nil", pos, err)
		}
		pos, err = f.Seek(0, io.SeekCurrent)
		if err != nil || pos != 8 {
			t.Errorf("Seek(0, SeekCurrent) = %d, %v; want 8, nil", pos, err)
		}
	})

	config.run(t, "FileCapabilities", "Locker", func(t *testing.T) {
		name := join(base, "lock.txt")
		writeFile(t, filesystem, name, []byte("lock"))

		first, err := filesystem.OpenFile(name, os.O_RDWR, 0)
		if err != nil {
			t.Fatalf("OpenFile(%q): got error %v, want nil", name, err)
		}
		defer func() { _ = first.Close() }()

		locker, ok := first.(core.Locker)
		if !ok {
			if config.Locking {
				t.Fatalf("handle does not implement core.Locker")
			}
			return
		}

		err = locker.Lock(true, true)
		if !config.Locking {
			if !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Lock(): got error %v, want core.ErrUnsupported", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Lock(exclusive, nonblocking): got error %v, want nil", err)
		}

		second, err := filesystem.OpenFile(name, os.O_RDWR, 0)
		if err != nil {
			t.Fatalf("OpenFile(%q) second handle: got error %v, want nil", name, err)
		}
		defer func() { _ = second.Close() }()

		other := second.(core.Locker)
		if err := other.Lock(true, true); err == nil {
			t.Errorf("second Lock(exclusive, nonblocking) while held: got nil, want error")
		}
		if err := locker.Unlock(); err != nil {
			t.Fatalf("Unlock(): got error %v, want nil", err)
		}
		if err := other.Lock(false, true); err != nil {
			t.Errorf("second Lock(shared, nonblocking) after Unlock: got error %v, want nil", err)
		}
	})
}
