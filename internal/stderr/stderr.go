//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, PulseAudio
// shims) write straight to file descriptor 2, bypassing os.Stderr, so it
// cannot tear through the navigation bar while the TUI owns the terminal.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Capture redirects file descriptor 2 into a pipe and forwards each
// non-empty line.
type Capture struct {
	lines    chan string
	orig     int
	pipeRead *os.File
	pipeW    *os.File
	stopped  bool
}

// Start begins capturing. Must be called before the audio backend is
// initialized. On error nothing was redirected and output keeps going to the
// terminal.
func Start(buffer int) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:    make(chan string, max(buffer, 1)),
		orig:     orig,
		pipeRead: r,
		pipeW:    w,
	}
	go c.forward()
	return c, nil
}

func (c *Capture) forward() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.pipeRead)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// full, drop rather than block the writer
		}
	}
}

// Lines receives captured lines. It is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores file descriptor 2.
func (c *Capture) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.pipeW.Close()
}
