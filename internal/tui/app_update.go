package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"projectpad/internal/drag"
	"projectpad/internal/model"
	"projectpad/internal/session"
)

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 8
		m.clampScroll()
		return m, nil

	case warnTickMsg:
		if m.sess.ExpireWarning(time.Now()) {
			return m, nil
		}
		if m.sess.Warning != nil {
			return m, warnTick()
		}
		return m, nil

	case autoScrollTickMsg:
		if !m.sess.Dragging() || m.autoScrollDir == 0 {
			return m, nil
		}
		m.scroll += m.autoScrollDir * drag.ScrollStep
		m.clampScroll()
		return m, autoScrollTick()

	case storeChangedMsg:
		// Another process wrote the store. Don't yank the tree out from under
		// an active gesture or edit; remember the signal and reload when the
		// gesture ends.
		if m.sess.Dragging() || m.editing {
			m.reloadPending = true
		} else {
			m.reloadFromStore()
		}
		return m, m.waitForStoreChange()

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m *appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpVisible {
		m.helpVisible = false
		return m, nil
	}
	if m.editing {
		return m.updateEditKey(msg)
	}
	if m.modal != modalNone {
		return m.updateModalKey(msg)
	}
	m.statusText = ""

	switch msg.String() {
	case "ctrl+c", "q":
		m.persistUIState()
		return m, tea.Quit

	case "?":
		m.helpVisible = true
		return m, nil

	case "up", "k":
		m.selectStep(-1)
		return m, nil
	case "down", "j":
		m.selectStep(1)
		return m, nil

	case "left", "h":
		// Close the selected node, or land on its parent when already closed.
		i := m.selectedRowIdx()
		if i < 0 {
			return m, nil
		}
		r := m.rows[i]
		if r.hasChildren && r.open {
			if m.sess.ToggleOpen(r.id) {
				m.rebuildRows()
				m.persistTree()
			}
			return m, nil
		}
		m.selectParent(i)
		return m, nil

	case "right", "l":
		i := m.selectedRowIdx()
		if i >= 0 && m.rows[i].hasChildren && !m.rows[i].open {
			if m.sess.ToggleOpen(m.rows[i].id) {
				m.rebuildRows()
				m.persistTree()
			}
		}
		return m, nil

	case " ":
		if m.sess.SelectedID != "" {
			if m.sess.ToggleOpen(m.sess.SelectedID) {
				m.rebuildRows()
				m.persistTree()
			}
		}
		return m, nil

	case "tab":
		if m.sess.ToggleAllOpen() {
			m.rebuildRows()
			m.persistTree()
		}
		return m, nil

	case "alt+up":
		return m.moveLinear(model.DirectionUp)
	case "alt+down":
		return m.moveLinear(model.DirectionDown)
	case "alt+left":
		return m.moveLinear(model.DirectionLeft)
	case "alt+right":
		return m.moveLinear(model.DirectionRight)

	case "a":
		return m.addNode(m.sess.SelectedID)
	case "A", "n":
		return m.addNode("")

	case "enter", "e":
		return m.beginEdit()

	case "d", "delete", "backspace":
		return m.requestDelete()

	case "C":
		m.modal = modalConfirmClear
		m.modalFocus = confirmFocusCancel
		return m, nil

	case "o":
		m.settings.DecayEnabled = !m.settings.DecayEnabled
		m.persistSettings()
		return m, nil

	case "y":
		if i := m.selectedRowIdx(); i >= 0 {
			if err := copyToClipboard(m.rows[i].displayTitle()); err != nil {
				m.statusText = "clipboard: " + err.Error()
			} else {
				m.statusText = "copied"
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *appModel) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
		return m, warnTick()
	case "esc", "ctrl+g":
		// A brand-new node commits whatever is typed (it has no title to fall
		// back to); an existing node keeps its old title.
		if m.sess.PendingEditID == m.sess.SelectedID && m.sess.PendingEditID != "" {
			m.commitEdit()
			return m, warnTick()
		}
		m.editing = false
		m.input.Blur()
		m.consumePendingReload()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// consumePendingReload applies a store change that arrived while a drag or
// edit was in flight. Runs after the local state was persisted, so the reload
// observes the merged result.
func (m *appModel) consumePendingReload() {
	if !m.reloadPending {
		return
	}
	m.reloadPending = false
	m.reloadFromStore()
}

func (m *appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.modalFocus == confirmFocusConfirm {
			m.modalFocus = confirmFocusCancel
		} else {
			m.modalFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.modalFocus == confirmFocusConfirm {
			m.applyModalConfirm()
		} else {
			m.dismissModal()
		}
		return m, nil
	case "y":
		m.applyModalConfirm()
		return m, nil
	case "n", "esc", "ctrl+g":
		m.dismissModal()
		return m, nil
	}
	return m, nil
}

func (m *appModel) applyModalConfirm() {
	switch m.modal {
	case modalConfirmDelete:
		if m.sess.ConfirmDelete(m.modalForID) {
			m.rebuildRows()
			m.persistTree()
		}
	case modalConfirmClear:
		if m.sess.ClearAll() {
			m.rebuildRows()
			m.persistTree()
		}
	}
	m.modal = modalNone
	m.modalForID = ""
}

func (m *appModel) dismissModal() {
	if m.modal == modalConfirmDelete {
		m.sess.CancelDelete()
	}
	m.modal = modalNone
	m.modalForID = ""
}

func (m *appModel) selectStep(delta int) {
	if len(m.rows) == 0 {
		return
	}
	i := m.selectedRowIdx()
	if i < 0 {
		i = 0
	} else {
		i += delta
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.rows) {
		i = len(m.rows) - 1
	}
	m.sess.Select(m.rows[i].id)
	m.ensureSelectedVisible()
}

func (m *appModel) selectParent(i int) {
	depth := m.rows[i].depth
	if depth == 0 {
		return
	}
	for j := i - 1; j >= 0; j-- {
		if m.rows[j].depth < depth {
			m.sess.Select(m.rows[j].id)
			m.ensureSelectedVisible()
			return
		}
	}
}

func (m *appModel) moveLinear(dir model.Direction) (tea.Model, tea.Cmd) {
	if m.sess.MoveLinear(dir) {
		m.rebuildRows()
		m.ensureSelectedVisible()
		m.persistTree()
	}
	return m, nil
}

func (m *appModel) addNode(parentID string) (tea.Model, tea.Cmd) {
	if _, ok := m.sess.Add(parentID); !ok {
		m.statusText = "cannot add here (depth limit)"
		return m, nil
	}
	m.rebuildRows()
	m.ensureSelectedVisible()
	m.persistTree()
	return m.beginEdit()
}

func (m *appModel) beginEdit() (tea.Model, tea.Cmd) {
	i := m.selectedRowIdx()
	if i < 0 {
		return m, nil
	}
	m.editing = true
	m.input.SetValue(m.rows[i].title)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *appModel) commitEdit() {
	m.editing = false
	m.input.Blur()
	if m.sess.Rename(m.sess.SelectedID, m.input.Value(), time.Now()) {
		m.rebuildRows()
		m.persistTree()
	}
	m.consumePendingReload()
}

func (m *appModel) requestDelete() (tea.Model, tea.Cmd) {
	id := m.sess.SelectedID
	if id == "" {
		return m, nil
	}
	switch m.sess.RequestDelete(id) {
	case session.DeleteNeedsConfirm:
		m.modal = modalConfirmDelete
		m.modalForID = id
		m.modalFocus = confirmFocusCancel
	case session.DeleteDone:
		m.rebuildRows()
		m.persistTree()
	}
	return m, nil
}

func (m *appModel) reloadFromStore() {
	t, _, err := m.st.LoadTree(context.Background())
	if err != nil {
		return
	}
	selected := m.sess.SelectedID
	m.sess.Tree = t
	m.sess.Select(selected)
	m.rebuildRows()
}
