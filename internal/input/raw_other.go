//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package input

import "golang.org/x/term"

// makeRaw puts fd in raw mode with golang.org/x/term. The returned function
// restores the previous mode.
func makeRaw(fd int) (func() error, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, state) }, nil
}
