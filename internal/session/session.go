// Package session is the command surface the UI shell drives. It owns the
// single live tree snapshot plus the view state around it (selection,
// pending-edit, delete confirmation, drag session, length advisory).
//
// Mutations go through internal/mutate; every command reports whether the tree
// changed so the caller can persist as a post-commit effect. Commands never
// error on illegal structural input — the illegal step is simply not applied.
package session

import (
	"strings"
	"time"

	"projectpad/internal/drag"
	"projectpad/internal/model"
	"projectpad/internal/mutate"
	"projectpad/internal/tree"
)

// WarningTTL is how long the rename-overflow advisory stays visible.
const WarningTTL = 3 * time.Second

// LengthWarning is the transient advisory shown when a rename ran over the
// title cap.
type LengthWarning struct {
	ID        string
	Excess    int
	ExpiresAt time.Time
}

// Session owns the tree and the interaction state of one panel.
type Session struct {
	Tree []model.Node

	SelectedID      string
	PendingEditID   string
	ConfirmDeleteID string

	Warning *LengthWarning

	drag *drag.Session
}

// New wraps an already-normalized tree. Trees from storage must pass through
// tree.NormalizeIDs before they get here.
func New(t []model.Node) *Session {
	return &Session{Tree: t}
}

// Add creates a blank node at the root (parentID == "") or as the last child
// of the parent, selects it, and marks it pending-edit so the UI immediately
// opens the rename affordance. Returns the new id and whether the tree
// changed; a parent at the depth limit rejects the add.
func (s *Session) Add(parentID string) (string, bool) {
	parentID = strings.TrimSpace(parentID)
	if parentID != "" {
		_, depth, ok := tree.FindContextWithDepth(&s.Tree, parentID)
		if !ok || depth >= model.MaxDepth-1 {
			return "", false
		}
	}
	id, err := tree.GenerateUniqueID(tree.CollectIDs(s.Tree))
	if err != nil {
		return "", false
	}
	next, ok := mutate.Insert(s.Tree, parentID, model.Node{ID: id, IsOpen: true})
	if !ok {
		return "", false
	}
	s.Tree = next
	s.SelectedID = id
	s.PendingEditID = id
	return id, true
}

// Rename commits a title edit. Overflow raises a timed advisory; the stored
// title is already corrected, so the advisory is informational only.
func (s *Session) Rename(id, raw string, now time.Time) bool {
	next, res := mutate.Rename(s.Tree, id, raw)
	if s.PendingEditID == strings.TrimSpace(id) {
		s.PendingEditID = ""
	}
	if res.Excess > 0 {
		s.Warning = &LengthWarning{ID: strings.TrimSpace(id), Excess: res.Excess, ExpiresAt: now.Add(WarningTTL)}
	}
	if !res.Changed {
		return false
	}
	s.Tree = next
	return true
}

// ExpireWarning drops the advisory once its deadline passes; reports whether
// anything was dropped.
func (s *Session) ExpireWarning(now time.Time) bool {
	if s.Warning == nil || now.Before(s.Warning.ExpiresAt) {
		return false
	}
	s.Warning = nil
	return true
}

func (s *Session) ToggleOpen(id string) bool {
	next, ok := mutate.ToggleOpen(s.Tree, id)
	if ok {
		s.Tree = next
	}
	return ok
}

func (s *Session) SetAllOpen(open bool) bool {
	s.Tree = mutate.SetAllOpen(s.Tree, open)
	return true
}

// ToggleAllOpen drives the tri-state expand/collapse-all toggle: a mixed tree
// opens everything, an all-open tree closes everything, an all-closed tree
// opens everything.
func (s *Session) ToggleAllOpen() bool {
	switch tree.ComputeOpenState(s.Tree) {
	case tree.OpenStateAllOpen:
		return s.SetAllOpen(false)
	default:
		return s.SetAllOpen(true)
	}
}

func (s *Session) EnsureOpen(id string) bool {
	next, ok := mutate.EnsureOpen(s.Tree, id)
	if ok {
		s.Tree = next
	}
	return ok
}

// Select moves the single selection. Selecting clears any pending delete
// confirmation on another node.
func (s *Session) Select(id string) {
	id = strings.TrimSpace(id)
	s.SelectedID = id
	if s.ConfirmDeleteID != "" && s.ConfirmDeleteID != id {
		s.ConfirmDeleteID = ""
	}
}

// DeleteOutcome says what RequestDelete did.
type DeleteOutcome int

const (
	DeleteNone DeleteOutcome = iota
	// DeleteDone: the node was a leaf and has been removed.
	DeleteDone
	// DeleteNeedsConfirm: the node has descendants; an explicit ConfirmDelete
	// is required before anything is removed.
	DeleteNeedsConfirm
)

// RequestDelete removes a leaf immediately; a node with children only arms the
// confirmation state.
func (s *Session) RequestDelete(id string) DeleteOutcome {
	id = strings.TrimSpace(id)
	ctx, ok := tree.FindContext(&s.Tree, id)
	if !ok {
		return DeleteNone
	}
	if len(ctx.Node.Children) > 0 {
		s.ConfirmDeleteID = id
		return DeleteNeedsConfirm
	}
	if s.removeSubtree(id) {
		return DeleteDone
	}
	return DeleteNone
}

// ConfirmDelete removes the node and its whole subtree, but only for the id
// the confirmation was armed for.
func (s *Session) ConfirmDelete(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" || s.ConfirmDeleteID != id {
		return false
	}
	s.ConfirmDeleteID = ""
	return s.removeSubtree(id)
}

func (s *Session) CancelDelete() {
	s.ConfirmDeleteID = ""
}

func (s *Session) removeSubtree(id string) bool {
	ids := tree.CollectSubtreeIDs(s.Tree, id)
	next, ok := mutate.RemoveMany(s.Tree, ids)
	if !ok {
		return false
	}
	s.Tree = next
	s.clearDanglingRefs(ids)
	return true
}

// ClearAll empties the tree and every piece of interaction state.
func (s *Session) ClearAll() bool {
	changed := len(s.Tree) > 0
	s.Tree = nil
	s.SelectedID = ""
	s.PendingEditID = ""
	s.ConfirmDeleteID = ""
	s.Warning = nil
	s.drag = nil
	return changed
}

func (s *Session) clearDanglingRefs(removed map[string]bool) {
	if removed[s.SelectedID] {
		s.SelectedID = ""
	}
	if removed[s.PendingEditID] {
		s.PendingEditID = ""
	}
	if removed[s.ConfirmDeleteID] {
		s.ConfirmDeleteID = ""
	}
	if s.drag != nil && removed[s.drag.DragID()] {
		s.drag = nil
	}
}

// MoveLinear applies a single-step keyboard move to the selection.
func (s *Session) MoveLinear(dir model.Direction) bool {
	if s.SelectedID == "" {
		return false
	}
	next, ok := mutate.MoveLinear(s.Tree, s.SelectedID, dir)
	if ok {
		s.Tree = next
	}
	return ok
}
