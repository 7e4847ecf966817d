package stderr

import tea "github.com/charmbracelet/bubbletea"

// LineMsg carries one captured line.
type LineMsg struct {
	Line string
}

// Watch returns a command waiting for the next captured line. It yields nil
// once the capture is stopped. Re-issue it after each LineMsg.
func Watch(c *Capture) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-c.Lines()
		if !ok {
			return nil
		}
		return LineMsg{Line: line}
	}
}
