// Package layout provides pure functions for navigation bar geometry.
package layout

import "math"

// BorderSize is the width (and height) taken by the capsule border on each side.
const BorderSize = 1

// TargetOffset returns the horizontal offset of the highlight for the item at
// index, measured from the inner left edge of the capsule.
// Every item is itemWidth wide and items are separated (and preceded) by
// itemSpacing. Callers keep index within the item list.
func TargetOffset(index int, itemWidth, itemSpacing float64) float64 {
	return itemSpacing + (itemWidth+itemSpacing)*float64(index)
}

// ContentWidth returns the inner width of the capsule holding count items:
// leading spacing, then each item followed by one spacing.
func ContentWidth(count, itemWidth, itemSpacing int) int {
	if count <= 0 {
		return itemSpacing * 2
	}
	return itemSpacing + count*(itemWidth+itemSpacing)
}

// BarWidth returns the full capsule width including its border.
func BarWidth(count, itemWidth, itemSpacing int) int {
	return ContentWidth(count, itemWidth, itemSpacing) + 2*BorderSize
}

// ContentRows returns the number of rows available inside the capsule border
// for a bar of the given height. At least one row is always available.
func ContentRows(height int) int {
	return max(height-2*BorderSize, 1)
}

// CellSpan converts a fractional offset into a half-open cell range
// [start, end) of the given width, clamped to [0, limit).
// The offset is rounded to the nearest cell.
func CellSpan(offset float64, width, limit int) (start, end int) {
	start = int(math.Round(offset))
	end = start + width
	start = max(start, 0)
	end = min(end, limit)
	if end < start {
		end = start
	}
	return start, end
}

// ItemAt returns the index of the item covering the inner column x, or -1 when
// x falls on spacing or outside the items.
func ItemAt(x, count, itemWidth, itemSpacing int) int {
	if x < itemSpacing || itemWidth <= 0 {
		return -1
	}
	stride := itemWidth + itemSpacing
	idx := (x - itemSpacing) / stride
	if idx >= count || (x-itemSpacing)%stride >= itemWidth {
		return -1
	}
	return idx
}

// ScreenOpts contains the parameters needed to size the screen area above the bar.
type ScreenOpts struct {
	BarHeight       int
	VerticalPadding int
	HelpHeight      int
}

// ScreenHeight calculates the height left for screen content once the
// floating bar, its vertical padding and the help line are laid out.
func ScreenHeight(windowHeight int, opts ScreenOpts) int {
	height := windowHeight
	height -= opts.BarHeight
	height -= 2 * opts.VerticalPadding
	height -= opts.HelpHeight
	return max(height, 0)
}

// CenterLeft returns the left padding needed to center content of the given
// width within width columns. Returns 0 when content does not fit.
func CenterLeft(width, contentWidth int) int {
	if contentWidth >= width {
		return 0
	}
	return (width - contentWidth) / 2
}
