package drag

// Auto-scroll: while dragging, pointer proximity to the top or bottom edge of
// the scrollable viewport keeps the list scrolling a fixed step per frame
// until the pointer re-enters the middle region or the drag ends.

// edgeFrac is the share of the viewport height, on each side, that counts as
// the scroll-trigger band.
const edgeFrac = 0.1

// ScrollStep is the number of rows scrolled per frame while auto-scrolling.
const ScrollStep = 1

// ScrollDirection maps a pointer y (relative to the viewport top) to -1
// (scroll up), +1 (scroll down), or 0 (inside the dead zone). The trigger band
// is at least one row tall so short viewports still scroll.
func ScrollDirection(viewportHeight int, y int) int {
	if viewportHeight <= 0 {
		return 0
	}
	band := int(float64(viewportHeight) * edgeFrac)
	if band < 1 {
		band = 1
	}
	switch {
	case y < band:
		return -1
	case y >= viewportHeight-band:
		return 1
	default:
		return 0
	}
}
