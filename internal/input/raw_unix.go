//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package input

import "golang.org/x/sys/unix"

// makeRaw disables line buffering, echo and signal keys on fd like
// term.MakeRaw, but leaves output processing on so "\n" still returns the
// carriage. The returned function restores the previous mode.
func makeRaw(fd int) (func() error, error) {
	old, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	raw := *old
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, old)
	}, nil
}
