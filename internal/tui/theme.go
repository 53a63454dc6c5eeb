package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme/palette helpers.
//
// The panel must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	// Two-step fade ramp for the opacity-decay view mode. Rows past the decay
	// rank use colorDecayNear, rows far past it use colorDecayFar.
	colorDecayNear lipgloss.TerminalColor = ac("245", "242")
	colorDecayFar  lipgloss.TerminalColor = ac("250", "238")

	// Selection highlight; matches the Alabaster highlight, which reads well
	// across terminals.
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorAccent  lipgloss.TerminalColor = ac("27", "62") // blue
	colorWarning lipgloss.TerminalColor = ac("130", "214")
	colorDanger  lipgloss.TerminalColor = ac("196", "160")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
}

func styleDragging() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

func styleWarning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorWarning)
}

func styleDecay(level int) lipgloss.Style {
	switch {
	case level <= 0:
		return lipgloss.NewStyle()
	case level == 1:
		return faintIfDark(lipgloss.NewStyle().Foreground(colorDecayNear))
	default:
		return faintIfDark(lipgloss.NewStyle().Foreground(colorDecayFar))
	}
}
