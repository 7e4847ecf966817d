package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("glass_effect_alpha must be within [0,1], got 2"),
			expected: "Failed to load configuration: glass_effect_alpha must be within [0,1], got 2",
		},
		{
			name:     "feedback operation",
			op:       OpFeedback,
			err:      errors.New("no audio device"),
			expected: "Failed to play selection feedback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		err      error
		expected string
	}{
		{"nil error", "debug.log", nil, ""},
		{"with context", "debug.log", errors.New("permission denied"), "Failed to open debug log 'debug.log': permission denied"},
		{"empty context", "", errors.New("permission denied"), "Failed to open debug log: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(OpLogOpen, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
