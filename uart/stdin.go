package uart

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// StdinReader abstracts non-blocking stdin access so Device can be driven
// by tests without a real terminal.
type StdinReader interface {
	// Ready reports whether a byte is available without blocking.
	Ready() bool
	// ReadByte consumes exactly one available byte.
	ReadByte() (byte, error)
}

// fdStdin implements StdinReader over file descriptor 0 using a zero
// timeout poll, the non-blocking equivalent of the original's
// poll(&fds, 1, 0) check before read().
type fdStdin struct {
	fd int
}

// NewStdin returns a StdinReader backed by the process's standard input.
func NewStdin() StdinReader {
	return &fdStdin{fd: 0}
}

// Ready implements StdinReader.
func (s *fdStdin) Ready() bool {
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	return err == nil && n == 1 && fds[0].Revents&unix.POLLIN != 0
}

// ReadByte implements StdinReader.
func (s *fdStdin) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, fmt.Errorf("read() returned %d bytes, want 1", n)
	}
	return buf[0], nil
}
