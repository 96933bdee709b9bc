package terminal

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Raw sequences for emergency restoration when the screen cannot be finalized
var (
	seqSGR0          = []byte("\x1b[0m")
	seqCursorShow    = []byte("\x1b[?25h")
	seqAltScreenExit = []byte("\x1b[?1049l")
	seqAutoWrapOn    = []byte("\x1b[?7h")
	seqMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)

// ErrNotTerminal is returned by Preflight when stdin or stdout is redirected
var ErrNotTerminal = errors.New("not a terminal")

// Preflight verifies that stdin and stdout are attached to a terminal
func Preflight() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.Join(ErrNotTerminal, errors.New("stdin"))
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.Join(ErrNotTerminal, errors.New("stdout"))
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseOff)
	w.Write(seqCursorShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort
	resetTerminalMode()
}
