//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "golang.org/x/term"

// enableRawMode on platforms without termios falls back to x/term, which
// always disables echo.
func enableRawMode(fd int, _ bool) (func() error, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}
