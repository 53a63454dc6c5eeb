package session

import (
	"strings"
	"time"

	"projectpad/internal/drag"
	"projectpad/internal/model"
	"projectpad/internal/mutate"
	"projectpad/internal/tree"
)

// Drag commands. Previews are applied optimistically: the live tree is the
// preview, so the list reorders during the drag rather than only on drop.
// The drag is non-reverting: dropping outside the list keeps whatever the
// last valid preview produced.

// DragStart begins a drag session for id. At most one drag can be active.
func (s *Session) DragStart(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || s.drag != nil {
		return false
	}
	if _, ok := tree.FindContext(&s.Tree, id); !ok {
		return false
	}
	s.drag = drag.New(id)
	s.SelectedID = id
	s.ConfirmDeleteID = ""
	return true
}

// Dragging reports whether a drag session is active.
func (s *Session) Dragging() bool { return s.drag != nil }

// DragID returns the dragged node's id, or "" outside a drag.
func (s *Session) DragID() string {
	if s.drag == nil {
		return ""
	}
	return s.drag.DragID()
}

// DragPreview consumes one pointer-over event during a drag. The derived
// (target, position) is validated against the depth/cycle rules and, when
// legal, applied immediately to the live tree. Illegal or not-yet-committed
// decisions leave the tree untouched, so the list never shows an invalid
// state. Returns whether the tree changed.
//
// Previews must be fed in event order: each one observes the tree left by the
// previous preview, not a stale snapshot.
func (s *Session) DragPreview(targetID string, box drag.RowBox, y float64, childrenVisible bool, now time.Time) bool {
	if s.drag == nil {
		return false
	}
	pos, ok := s.drag.Hover(targetID, box, y, childrenVisible, now)
	if !ok {
		return false
	}
	mpos := model.Position(pos)
	if !mutate.CanPlace(s.Tree, s.drag.DragID(), targetID, mpos) {
		return false
	}
	next, moved := mutate.Move(s.Tree, s.drag.DragID(), targetID, mpos)
	if !moved {
		return false
	}
	s.Tree = next
	return true
}

// DragLeave resets hover hysteresis when the pointer exits all rows.
func (s *Session) DragLeave() {
	if s.drag != nil {
		s.drag.Leave()
	}
}

// Drop ends the drag inside the list. The current preview state already is the
// final state; only the session fields need clearing.
func (s *Session) Drop() {
	s.drag = nil
}

// DragEnd ends the drag from outside the list or on cancellation. Preview
// changes are kept (non-reverting drag); any pending hover timer dies with the
// session, so no late decision can fire against a tree that no longer tracks
// the drag.
func (s *Session) DragEnd() {
	s.drag = nil
}
