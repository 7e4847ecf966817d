// Package ui holds what the bar components share.
package ui

// Base stores the width allotted to a component by its host.
// Embed it in component models.
type Base struct {
	width int
}

// SetWidth sets the component width.
func (b *Base) SetWidth(width int) {
	b.width = width
}

// Width returns the component width. Zero means unsized.
func (b Base) Width() int {
	return b.width
}
