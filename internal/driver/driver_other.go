//go:build !linux

package driver

import (
	"io"
	"os"

	"github.com/Akron/packed12"
)

// Process is the portable fallback used on platforms without the Linux
// mmap path: read the whole file, transform the payload in memory, and
// write it back from the top. Functionally equivalent to the mmap path,
// just without the shared-mapping and page-cache hints.
func Process(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return systemError("open", err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return systemError("read", err)
	}
	if int64(len(buf)) <= HeaderSize {
		return fileSizeError("file too small for header")
	}

	payload := buf[HeaderSize:]
	if code := packed12.EncodeLogInplace(payload); code != packed12.OK {
		msg, _ := packed12.MessageFromCode(code)
		return &Error{Code: code, Op: "encode_log_inplace: " + msg}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return systemError("seek", err)
	}
	if _, err := f.Write(buf); err != nil {
		return systemError("write", err)
	}
	if err := f.Truncate(int64(len(buf))); err != nil {
		return systemError("truncate", err)
	}
	return nil
}
