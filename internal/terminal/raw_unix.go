//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"golang.org/x/sys/unix"
)

// enableRawMode clears ICANON (and ECHO unless echo is set) so reads return
// after every byte, leaving signal keys and output processing untouched.
func enableRawMode(fd int, echo bool) (func() error, error) {
	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	cur := *old
	cur.Lflag &^= unix.ICANON
	if echo {
		cur.Lflag |= unix.ECHO
	} else {
		cur.Lflag &^= unix.ECHO
	}
	cur.Cc[unix.VMIN] = 1
	cur.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &cur); err != nil {
		return nil, err
	}
	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, old)
	}, nil
}
