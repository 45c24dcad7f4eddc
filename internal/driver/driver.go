// Package driver is the file-level collaborator around the core codec:
// memory-map a file, skip its fixed-size header, run the in-place
// log-encode transform over the remainder, and flush it back.
//
// The codec itself (github.com/Akron/packed12) never touches a file; this
// package is the thin, platform-specific glue around mmap/msync that
// hands the codec a (pointer, length) pair, built on golang.org/x/sys/unix
// so it can also issue the madvise/msync calls the driver needs.
package driver

import (
	"fmt"
)

// HeaderSize is the number of opaque bytes at the start of every packed12
// file, skipped by Process and never interpreted by the codec.
const HeaderSize = 512

// Extended result codes, per the core codec's extension rule: anything
// below -100 is this package's own, and never collides with the core's
// dense -1..-7 range.
const (
	ErrSystem   = -101
	ErrFileSize = -102
)

// Error wraps a system or file-size failure from Process with the
// extended code it corresponds to, so callers that care can switch on
// Code without string-matching.
type Error struct {
	Code int
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("packed12 driver: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("packed12 driver: %s", e.Op)
}

func (e *Error) Unwrap() error { return e.Err }

func fileSizeError(op string) *Error {
	return &Error{Code: ErrFileSize, Op: op}
}

func systemError(op string, err error) *Error {
	return &Error{Code: ErrSystem, Op: op, Err: err}
}
