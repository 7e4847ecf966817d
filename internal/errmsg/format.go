// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	OpConfigLoad  Op = "load configuration"
	OpConfigWatch Op = "watch configuration"
	OpLogOpen     Op = "open debug log"
	OpFeedback    Op = "play selection feedback"
	OpNotify      Op = "show desktop notification"
	OpCapture     Op = "capture audio backend output"
	OpRun         Op = "run navigation demo"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
