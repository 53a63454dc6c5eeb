package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"projectpad/internal/store"
)

// Run opens the interactive panel on the given store and blocks until quit.
func Run(s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	m, err := newAppModel(s)
	if err != nil {
		return err
	}
	defer m.close()
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
