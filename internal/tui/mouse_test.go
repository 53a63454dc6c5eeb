package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"projectpad/internal/model"
	"projectpad/internal/session"
	"projectpad/internal/store"
)

// newTestPanel builds a panel around an in-memory session, skipping the store
// so tests exercise only the input wiring.
func newTestPanel(nodes []model.Node) *appModel {
	m := &appModel{sess: session.New(nodes), width: 40, height: 12}
	m.input = textinput.New()
	m.rebuildRows()
	return m
}

func press(m *appModel, y int) {
	m.updateMouse(tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func motion(m *appModel, y int) {
	m.updateMouse(tea.MouseMsg{Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func TestDragMotion_UpwardReachesFirstSlot(t *testing.T) {
	m := newTestPanel([]model.Node{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	})

	// Grab the last row and move straight onto the first one: the node must
	// land in slot 0, not after the hovered row.
	press(m, headerLines+2)
	motion(m, headerLines)

	if !m.sess.Dragging() || m.sess.DragID() != "c" {
		t.Fatalf("drag not tracking c: dragging=%v id=%q", m.sess.Dragging(), m.sess.DragID())
	}
	if m.sess.Tree[0].ID != "c" || m.sess.Tree[1].ID != "a" || m.sess.Tree[2].ID != "b" {
		t.Fatalf("upward drag order: %q %q %q, want c a b",
			m.sess.Tree[0].ID, m.sess.Tree[1].ID, m.sess.Tree[2].ID)
	}
}

func TestDragMotion_DownwardInsertsAfter(t *testing.T) {
	m := newTestPanel([]model.Node{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	})

	press(m, headerLines)
	motion(m, headerLines+2)

	if m.sess.Tree[0].ID != "b" || m.sess.Tree[1].ID != "c" || m.sess.Tree[2].ID != "a" {
		t.Fatalf("downward drag order: %q %q %q, want b c a",
			m.sess.Tree[0].ID, m.sess.Tree[1].ID, m.sess.Tree[2].ID)
	}
}

func TestStoreChange_DuringEditAppliesWhenEditEnds(t *testing.T) {
	s := store.Store{Dir: t.TempDir()}
	ctx := context.Background()
	if err := s.SaveTree(ctx, []model.Node{{ID: "a", Title: "Alpha"}}); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}

	m, err := newAppModel(s)
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	defer m.close()
	m.width, m.height = 40, 12

	m.sess.Select("a")
	m.beginEdit()

	// Another process adds a root while the rename prompt is open.
	ext := append(model.CloneTree(m.sess.Tree), model.Node{ID: "b", Title: "Beta"})
	if err := s.SaveTree(ctx, ext); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}

	m.Update(storeChangedMsg{})
	if len(m.sess.Tree) != 1 {
		t.Fatalf("reload applied mid-edit")
	}
	if !m.reloadPending {
		t.Fatalf("change signal dropped instead of deferred")
	}

	// Cancelling the edit must pick the external change up even if no further
	// signal ever arrives.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing {
		t.Fatalf("esc did not end the edit")
	}
	if len(m.sess.Tree) != 2 || m.sess.Tree[1].ID != "b" {
		t.Fatalf("deferred reload not applied: %+v", m.sess.Tree)
	}
	if m.reloadPending {
		t.Fatalf("pending flag not cleared")
	}
}
