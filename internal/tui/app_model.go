package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"projectpad/internal/session"
	"projectpad/internal/store"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalConfirmClear
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// Layout constants: header line + blank, then the list, then blank + footer.
const (
	headerLines = 2
	footerLines = 2
)

type warnTickMsg struct{}

type autoScrollTickMsg struct{}

type storeChangedMsg struct{}

type appModel struct {
	st       store.Store
	sess     *session.Session
	settings store.Settings

	width  int
	height int
	scroll int

	rows []row

	editing bool
	input   textinput.Model

	modal      modalKind
	modalFocus confirmModalFocus
	modalForID string

	helpVisible bool

	// pressedID is the row under the last mouse press; it becomes the dragged
	// node once the pointer moves with the button held.
	pressedID     string
	autoScrollDir int

	watcher *store.Watcher
	// reloadPending: an external change signal arrived mid-gesture; reload
	// once the drag or edit finishes instead of yanking the tree immediately.
	reloadPending bool

	statusText string
}

func newAppModel(s store.Store) (*appModel, error) {
	ctx := context.Background()
	t, repaired, err := s.LoadTree(ctx)
	if err != nil {
		return nil, err
	}
	if repaired {
		// Persist the cleaned snapshot so the repair happens once.
		if err := s.SaveTree(ctx, t); err != nil {
			return nil, err
		}
	}
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	m := &appModel{
		st:       s,
		sess:     session.New(t),
		settings: settings,
	}

	m.input = textinput.New()
	m.input.Placeholder = "Project name"
	m.input.CharLimit = 0
	m.input.Width = 30

	// Best-effort: restore selection/scroll from the previous run.
	if st, err := s.LoadUIState(); err == nil {
		m.sess.Select(st.SelectedID)
		m.scroll = st.Scroll
	}

	// Watching can fail (e.g. exotic filesystems); the panel still works, it
	// just won't pick up external writes.
	if w, err := s.Watch(); err == nil {
		m.watcher = w
	}

	m.rebuildRows()
	return m, nil
}

func (m *appModel) close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

func (m *appModel) Init() tea.Cmd {
	return m.waitForStoreChange()
}

func (m *appModel) rebuildRows() {
	m.rows = flattenTree(m.sess.Tree)
	m.clampScroll()
}

func (m *appModel) listHeight() int {
	h := m.height - headerLines - footerLines
	if h < 3 {
		h = 3
	}
	return h
}

func (m *appModel) clampScroll() {
	max := len(m.rows) - m.listHeight()
	if max < 0 {
		max = 0
	}
	if m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// rowIdx returns the flattened row index of id, or -1 when the node is not
// visible.
func (m *appModel) rowIdx(id string) int {
	if id == "" {
		return -1
	}
	for i := range m.rows {
		if m.rows[i].id == id {
			return i
		}
	}
	return -1
}

func (m *appModel) selectedRowIdx() int {
	return m.rowIdx(m.sess.SelectedID)
}

func (m *appModel) ensureSelectedVisible() {
	i := m.selectedRowIdx()
	if i < 0 {
		return
	}
	if i < m.scroll {
		m.scroll = i
	}
	if i >= m.scroll+m.listHeight() {
		m.scroll = i - m.listHeight() + 1
	}
}

// rowIdxAt maps an on-screen y to a flattened row index, or -1.
func (m *appModel) rowIdxAt(y int) int {
	i := m.scroll + y - headerLines
	if y < headerLines || i < 0 || i >= len(m.rows) {
		return -1
	}
	return i
}

func (m *appModel) persistTree() {
	if err := m.st.SaveTree(context.Background(), m.sess.Tree); err != nil {
		m.statusText = "save failed: " + err.Error()
	}
}

func (m *appModel) persistSettings() {
	if err := m.st.SaveSettings(context.Background(), m.settings); err != nil {
		m.statusText = "save failed: " + err.Error()
	}
}

func (m *appModel) persistUIState() {
	_ = m.st.SaveUIState(&store.UIState{
		Version:    1,
		SelectedID: m.sess.SelectedID,
		Scroll:     m.scroll,
	})
}

func (m *appModel) waitForStoreChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func warnTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return warnTickMsg{} })
}

// Frame pace for drag auto-scroll.
func autoScrollTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg { return autoScrollTickMsg{} })
}
