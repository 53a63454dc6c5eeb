package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) View() string {
	if m.width == 0 {
		return ""
	}
	if m.helpVisible {
		return m.viewHelp()
	}

	header := m.viewHeader()
	body := m.viewRows()
	footer := m.viewFooter()
	base := header + "\n\n" + body + "\n" + footer

	if m.modal != modalNone {
		return m.viewModal()
	}
	return base
}

func (m *appModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("Projects")
	extra := ""
	if m.settings.DecayEnabled {
		extra = styleMuted().Render("  fade on")
	}
	if m.sess.Dragging() {
		extra += styleDragging().Render("  moving…")
	}
	return title + extra
}

func (m *appModel) viewRows() string {
	h := m.listHeight()
	var b strings.Builder
	if len(m.rows) == 0 {
		b.WriteString(styleMuted().Render("No projects. Press a to add one."))
		b.WriteString(strings.Repeat("\n", h-1))
		return b.String()
	}
	end := m.scroll + h
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], m.width))
		b.WriteString("\n")
	}
	for i := end - m.scroll; i < h; i++ {
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *appModel) viewFooter() string {
	if m.statusText != "" {
		return styleMuted().Render(m.statusText)
	}
	if m.editing {
		return styleMuted().Render("enter: save   esc: cancel")
	}
	return styleMuted().Render("a: add  e: rename  d: delete  drag: move  alt+arrows: move  o: fade  ?: help  q: quit")
}

func (m *appModel) viewModal() string {
	var title, body string
	switch m.modal {
	case modalConfirmDelete:
		title = "Delete project"
		body = "This project has sub-projects. Delete it and everything under it?"
	case modalConfirmClear:
		title = "Clear all"
		body = "Delete every project? This cannot be undone."
	}
	box := renderConfirmModal(m.width, title, body, "Delete", "Cancel", m.modalFocus)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
