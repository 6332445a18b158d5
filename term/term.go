// Package term toggles stdin into raw mode for interactive sessions, and
// hands back a restore function. It is a narrow subset of easyterm's
// approach: this simulator never needs cbreak mode or terminal geometry,
// only raw mode and a clean way back to canonical mode.
package term

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Raw puts stdin into raw mode and returns a function that restores its
// original attributes. Go has no atexit; callers are expected to defer
// the returned restore function and also invoke it from any other exit
// path that needs to leave the terminal in canonical mode first.
func Raw() (restore func() error, err error) {
	fd := os.Stdin.Fd()

	var canonical syscall.Termios
	if err := termios.Tcgetattr(fd, &canonical); err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	var raw syscall.Termios = canonical
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &raw); err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	restored := false
	return func() error {
		if restored {
			return nil
		}
		restored = true
		return termios.Tcsetattr(fd, termios.TCIFLUSH, &canonical)
	}, nil
}
