//go:build linux

package driver

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/Akron/packed12"
)

// Process maps path read/write, skips HeaderSize bytes, runs the codec's
// dispatched log-encode transform over the remainder, and flushes the
// mapping back with msync before unmapping and closing. Files of size
// <= HeaderSize are rejected with ErrFileSize; any system call failure is
// wrapped as ErrSystem.
func Process(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return systemError("open", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return systemError("fstat", err)
	}
	size := info.Size()
	if size <= HeaderSize {
		return fileSizeError("file too small for header")
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_POPULATE)
	if err != nil {
		return systemError("mmap", err)
	}

	// Best-effort advice; failures here don't block the transform.
	_ = unix.Madvise(mem, unix.MADV_SEQUENTIAL)
	_ = unix.Madvise(mem, unix.MADV_WILLNEED)

	payload := mem[HeaderSize:]
	if code := packed12.EncodeLogInplace(payload); code != packed12.OK {
		unix.Munmap(mem)
		msg, _ := packed12.MessageFromCode(code)
		return &Error{Code: code, Op: "encode_log_inplace: " + msg}
	}

	if err := unix.Msync(mem, unix.MS_SYNC); err != nil {
		unix.Munmap(mem)
		return systemError("msync", err)
	}
	if err := unix.Munmap(mem); err != nil {
		return systemError("munmap", err)
	}
	return nil
}
