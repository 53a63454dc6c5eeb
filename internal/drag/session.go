// Package drag models one interactive drag gesture: a continuous stream of
// pointer coordinates over candidate rows is turned into discrete
// (target, position) insertion decisions with hysteresis so the preview does
// not flicker between reordering and nesting.
package drag

import (
	"strings"
	"time"
)

// HoverThreshold is how long the pointer must sit in a row's center band
// before the session commits to "inside" (nesting) instead of a sibling-level
// reorder.
const HoverThreshold = 500 * time.Millisecond

// Center-band share of the row height. A narrower band is used while the
// hovered row shows a child list directly beneath it, biasing toward
// reordering over nesting when children are visible.
const (
	centerFrac         = 0.6
	centerFracChildren = 0.3
)

// Band is the vertical zone of a row the pointer currently occupies.
type Band int

const (
	BandNone Band = iota
	BandTop
	BandCenter
	BandBottom
)

// RowBox is the hovered row's bounding box in whatever vertical units the host
// uses (pixels, cells). Only Top and Height matter.
type RowBox struct {
	Top    float64
	Height float64
}

// Position mirrors the three insertion positions of the mutation engine.
type Position string

const (
	Before Position = "before"
	After  Position = "after"
	Inside Position = "inside"
)

// Session tracks a single drag from start to drop/cancel. The zero value is
// unusable; start sessions with New. All methods take the current time rather
// than reading the clock, so hysteresis is testable without real waits.
type Session struct {
	dragID string

	hoverTarget     string
	hoverBand       Band
	enteredCenterAt time.Time
}

// New begins a drag session for the given node id.
func New(dragID string) *Session {
	return &Session{dragID: strings.TrimSpace(dragID)}
}

// DragID returns the id of the node being dragged.
func (s *Session) DragID() string { return s.dragID }

// Hover consumes one pointer-over event for a candidate row and derives the
// insertion decision. ok is false when no decision applies to this event
// (self-target). The caller is expected to validate the decision against the
// depth/cycle rules before applying it as a live preview.
//
// childrenVisible must be true when the hovered row has a visible child list
// directly beneath it. Events that land over a descendant row must be
// delivered for that row, not the ancestor; each row is its own handler.
func (s *Session) Hover(targetID string, box RowBox, y float64, childrenVisible bool, now time.Time) (Position, bool) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" || targetID == s.dragID {
		s.resetHover()
		return "", false
	}

	band := bandFor(box, y, childrenVisible)
	if targetID != s.hoverTarget || band != s.hoverBand {
		// Any change of row or band restarts the center-band clock.
		if band == BandCenter {
			s.enteredCenterAt = now
		}
		s.hoverTarget = targetID
		s.hoverBand = band
	}

	switch band {
	case BandTop:
		return Before, true
	case BandBottom:
		return After, true
	case BandCenter:
		if now.Sub(s.enteredCenterAt) >= HoverThreshold {
			return Inside, true
		}
		// Not committed to nesting yet: fall back to whichever half of the
		// row the pointer is closer to.
		if y < box.Top+box.Height/2 {
			return Before, true
		}
		return After, true
	}
	return "", false
}

// Leave resets hover state when the pointer exits all rows. The next center
// -band entry starts its own clock.
func (s *Session) Leave() { s.resetHover() }

func (s *Session) resetHover() {
	s.hoverTarget = ""
	s.hoverBand = BandNone
	s.enteredCenterAt = time.Time{}
}

func bandFor(box RowBox, y float64, childrenVisible bool) Band {
	frac := centerFrac
	if childrenVisible {
		frac = centerFracChildren
	}
	edge := box.Height * (1 - frac) / 2
	switch {
	case y < box.Top+edge:
		return BandTop
	case y >= box.Top+box.Height-edge:
		return BandBottom
	default:
		return BandCenter
	}
}
