package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestApplyThemePreference_HonorsExplicitTheme(t *testing.T) {
	prev := lipgloss.HasDarkBackground()
	defer lipgloss.SetHasDarkBackground(prev)

	t.Setenv("COLORFGBG", "")

	t.Setenv("PROJECTPAD_THEME", "light")
	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("PROJECTPAD_THEME=light still reports a dark background")
	}

	t.Setenv("PROJECTPAD_THEME", "dark")
	applyThemePreference()
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("PROJECTPAD_THEME=dark still reports a light background")
	}
}

func TestApplyThemePreference_ColorFGBGHeuristic(t *testing.T) {
	prev := lipgloss.HasDarkBackground()
	defer lipgloss.SetHasDarkBackground(prev)

	t.Setenv("PROJECTPAD_THEME", "")

	t.Setenv("COLORFGBG", "15;0")
	applyThemePreference()
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("bg index 0 should count as dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("bg index 15 should count as light")
	}
}

func TestApplyColorProfilePreference_HonorsNoColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(prev)

	t.Setenv("NO_COLOR", "1")
	applyColorProfilePreference()
	if lipgloss.ColorProfile() != termenv.Ascii {
		t.Fatalf("NO_COLOR did not force the ascii profile")
	}
}
