package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrFullscreenUnavailable is returned when the alternate screen cannot be used
var ErrFullscreenUnavailable = errors.New("fullscreen unavailable")

// Fullscreen decides whether the presenter may switch to the alternate screen
type Fullscreen interface {
	Available() error
}

// TerminalFullscreen allows fullscreen only when Out is a terminal
type TerminalFullscreen struct {
	Out *os.File
}

func (t TerminalFullscreen) Available() error {
	if t.Out == nil {
		return fmt.Errorf("%w: no output", ErrFullscreenUnavailable)
	}
	fd := t.Out.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("%w: output is not a terminal", ErrFullscreenUnavailable)
	}
	return nil
}
