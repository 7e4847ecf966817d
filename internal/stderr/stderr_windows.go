//go:build windows

// Package stderr provides a pass-through implementation for Windows, where
// the audio backend does not write to the console.
package stderr

import "os"

// Capture is a no-op on Windows.
type Capture struct {
	lines   chan string
	stopped bool
}

// Start returns a capture that never produces lines.
func Start(_ int) (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never receives; it is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Lines.
func (c *Capture) Stop() {
	if !c.stopped {
		c.stopped = true
		close(c.lines)
	}
}
