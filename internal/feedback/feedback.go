// Package feedback provides the tactile/audible pulse played when a
// navigation selection settles.
package feedback

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/llehouerou/capsule/internal/errmsg"
)

// Feedback performs a single feedback pulse.
// Implementations should return quickly; callers never consult the result
// beyond logging it.
type Feedback interface {
	Perform() error
}

// Backend names accepted by FromName.
const (
	BackendNone = "none"
	BackendBell = "bell"
	BackendTone = "tone"
)

// None is a no-op feedback for environments without any output device.
type None struct{}

// Perform does nothing.
func (None) Perform() error { return nil }

// Func adapts a plain function to the Feedback interface.
type Func func() error

// Perform calls f.
func (f Func) Perform() error {
	if f == nil {
		return nil
	}
	return f()
}

// Bell rings the terminal bell by writing a BEL byte.
type Bell struct {
	Out io.Writer // os.Stderr when nil
}

// Perform writes the BEL control character. Without an explicit writer it
// stays silent unless stderr is a terminal.
func (b Bell) Perform() error {
	out := b.Out
	if out == nil {
		if !stderrIsTerminal() {
			return nil
		}
		out = os.Stderr
	}
	_, err := out.Write([]byte{'\a'})
	return err
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// FromName returns the backend registered under name.
// Unknown names fall back to the bell.
func FromName(name string) Feedback {
	switch name {
	case BackendNone:
		return None{}
	case BackendTone:
		return NewTone()
	default:
		return Bell{}
	}
}

// Perform runs fb once and swallows any failure, including a panic.
// Failures are logged and never reach the caller.
func Perform(fb Feedback) {
	if fb == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("feedback: recovered from panic: %v", r)
		}
	}()
	if err := fb.Perform(); err != nil {
		log.Print(errmsg.Format(errmsg.OpFeedback, err))
	}
}

// Cmd wraps a feedback pulse into a fire-and-forget command.
// The command produces no message, so nothing ever waits on its completion.
func Cmd(fb Feedback) tea.Cmd {
	if fb == nil {
		return nil
	}
	return func() tea.Msg {
		Perform(fb)
		return nil
	}
}
