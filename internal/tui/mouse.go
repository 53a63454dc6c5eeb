package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"projectpad/internal/drag"
)

// Mouse wiring for the drag gesture. Rows render one cell tall, so the
// pointer is treated as sitting at the vertical center of the hovered cell;
// the drag machine's bands and hysteresis then decide between reordering and
// nesting. Press selects, motion with the button held drags, release drops.

func (m *appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.helpVisible || m.modal != modalNone || m.editing {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll -= 3
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll += 3
		m.clampScroll()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		i := m.rowIdxAt(msg.Y)
		if i < 0 {
			m.pressedID = ""
			return m, nil
		}
		r := m.rows[i]
		m.sess.Select(r.id)
		m.pressedID = r.id
		// A click on the twisty column folds/unfolds instead of arming a drag.
		if r.hasChildren && msg.X >= r.indentWidth() && msg.X < r.indentWidth()+2 {
			m.pressedID = ""
			if m.sess.ToggleOpen(r.id) {
				m.rebuildRows()
				m.persistTree()
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.updateDragMotion(msg)

	case tea.MouseActionRelease:
		return m.updateDragRelease(msg)
	}
	return m, nil
}

func (m *appModel) updateDragMotion(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.sess.Dragging() {
		if m.pressedID == "" || !m.sess.DragStart(m.pressedID) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	prevDir := m.autoScrollDir
	m.autoScrollDir = drag.ScrollDirection(m.listHeight(), msg.Y-headerLines)
	if m.autoScrollDir != 0 && prevDir == 0 {
		cmd = autoScrollTick()
	}

	i := m.rowIdxAt(msg.Y)
	if i < 0 {
		m.sess.DragLeave()
		return m, cmd
	}
	r := m.rows[i]

	// One row = one cell: the box spans [y, y+1) and the pointer sits in the
	// center band, where the closer-half fallback decides between before and
	// after. The exact center always reads as "after", so bias the pointer
	// toward the half the gesture came from: hovering a row above the dragged
	// node's current row means "insert before", below means "insert after".
	// Both offsets stay inside the narrow center band, so dwell-nesting keeps
	// working. Events over a descendant hit that descendant's own row, so no
	// extra deferral is needed here.
	pointerY := float64(msg.Y) + 0.6
	if di := m.rowIdx(m.sess.DragID()); di >= 0 && i < di {
		pointerY = float64(msg.Y) + 0.4
	}
	box := drag.RowBox{Top: float64(msg.Y), Height: 1}
	if m.sess.DragPreview(r.id, box, pointerY, r.childrenVisible, time.Now()) {
		debugLogf("drag preview drag=%s over=%s y=%d", m.sess.DragID(), r.id, msg.Y)
		m.rebuildRows()
	}
	return m, cmd
}

func (m *appModel) updateDragRelease(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pressedID = ""
	m.autoScrollDir = 0
	if !m.sess.Dragging() {
		return m, nil
	}
	// Non-reverting drag: an outside release keeps the live preview too, so
	// both paths persist the current tree.
	if m.rowIdxAt(msg.Y) >= 0 {
		m.sess.Drop()
	} else {
		m.sess.DragEnd()
	}
	m.persistTree()
	m.consumePendingReload()
	return m, nil
}
