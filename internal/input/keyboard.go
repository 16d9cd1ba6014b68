package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/dshills/gridterm/internal/input/key"
)

// maxKeySequence is the longest escape sequence decoded as one key.
const maxKeySequence = 16

// Keyboard reads keys and lines from a terminal or a plain stream.
//
// On a terminal, Init switches to raw input for the whole session so keys
// typed while a frame is written are not echoed into it. Output processing
// stays on, so frames keep their line breaks.
type Keyboard struct {
	mu     sync.Mutex
	in     *bufio.Reader
	out    io.Writer
	fd     int
	isTerm bool

	restore func() error

	// ready carries the result of a wait for input still in flight after
	// a Wake. Only that wait touches in until it is received.
	ready chan error
	wake  chan struct{}
}

// NewKeyboard creates a keyboard reading from in. Line echo goes to out.
func NewKeyboard(in io.Reader, out io.Writer) *Keyboard {
	k := &Keyboard{
		in:   bufio.NewReader(in),
		out:  out,
		fd:   -1,
		wake: make(chan struct{}, 1),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		k.fd = int(f.Fd())
		k.isTerm = true
	}
	return k
}

// NewStdinKeyboard creates a keyboard on the process terminal.
func NewStdinKeyboard() *Keyboard {
	return NewKeyboard(os.Stdin, os.Stdout)
}

// IsTerminal returns true if the keyboard reads from a TTY.
func (k *Keyboard) IsTerminal() bool {
	return k.isTerm
}

// Init puts the terminal in raw input mode until Shutdown. It does nothing
// for non-terminal input or when already initialized.
func (k *Keyboard) Init() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.isTerm || k.restore != nil {
		return nil
	}
	restore, err := makeRaw(k.fd)
	if err != nil {
		return err
	}
	k.restore = restore
	return nil
}

// Shutdown restores the terminal mode saved by Init.
func (k *Keyboard) Shutdown() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.restore == nil {
		return nil
	}
	err := k.restore()
	k.restore = nil
	return err
}

// Wake makes a read blocked waiting for input return: ReadKey with a
// KeyNone event and ReadLine with ErrInterrupted. A Wake with no read
// waiting applies to the next read that has to wait. Safe to call from any
// goroutine.
func (k *Keyboard) Wake() {
	select {
	case k.wake <- struct{}{}:
	default:
	}
}

// ReadKey blocks until a key is pressed and returns it. Escape sequences
// that name no known key are consumed and reported as KeyNone.
func (k *Keyboard) ReadKey() (key.Event, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	woken, err := k.waitInput()
	if err != nil || woken {
		return key.Event{}, err
	}

	// Decode from whatever arrived with the first byte.
	n := min(k.in.Buffered(), maxKeySequence)
	buf, err := k.in.Peek(n)
	if err != nil {
		return key.Event{}, err
	}
	ev, used := decodeKey(buf)
	if _, err := k.in.Discard(used); err != nil {
		return key.Event{}, err
	}
	return ev, nil
}

// ReadLine blocks until a line is entered and returns it without the
// trailing newline. On a terminal the line is edited and echoed with
// golang.org/x/term; Ctrl-C and Ctrl-D return ErrInterrupted.
func (k *Keyboard) ReadLine() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.isTerm {
		woken, err := k.waitInput()
		if woken {
			return "", ErrInterrupted
		}
		if err != nil {
			return "", err
		}
		line, err := k.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	// term.Terminal echoes the prompt before the first key arrives.
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{&wakeReader{k}, k.out}, "> ")
	line, err := t.ReadLine()
	if errors.Is(err, io.EOF) || errors.Is(err, errWoken) {
		return "", ErrInterrupted
	}
	return line, err
}

// errWoken ends a terminal line read interrupted by Wake.
var errWoken = errors.New("woken")

// wakeReader reads from the keyboard buffer, waiting for input in a way
// Wake can interrupt. The caller holds k.mu.
type wakeReader struct {
	k *Keyboard
}

func (r *wakeReader) Read(p []byte) (int, error) {
	woken, err := r.k.waitInput()
	if woken {
		return 0, errWoken
	}
	if err != nil {
		return 0, err
	}
	return r.k.in.Read(p[:min(len(p), r.k.in.Buffered())])
}

// waitInput blocks until input is buffered or Wake is called. The wait
// itself runs on its own goroutine so that it can be abandoned; a later
// call picks up its result. The caller holds k.mu.
func (k *Keyboard) waitInput() (woken bool, err error) {
	if k.ready == nil {
		if k.in.Buffered() > 0 {
			return false, nil
		}
		ready := make(chan error, 1)
		k.ready = ready
		go func() {
			_, err := k.in.Peek(1)
			ready <- err
		}()
	}

	select {
	case err := <-k.ready:
		k.ready = nil
		return false, err
	case <-k.wake:
		return true, nil
	}
}
