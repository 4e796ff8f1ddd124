package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme represents the user interface color theme
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemePlain Theme = "plain"
)

// DetectTheme returns the detected terminal theme. A non-terminal stdout
// (pipes, CI) always yields the plain theme so output stays byte-stable.
func DetectTheme() Theme {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ThemePlain
	}
	if lipgloss.HasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

// Apply switches the active palette to the named theme. Unknown names and
// "plain" disable styling entirely.
func Apply(name string) Theme {
	theme := Theme(name)
	if theme == ThemeAuto {
		theme = DetectTheme()
	}

	switch theme {
	case ThemeDark:
		SetDarkTheme()
	case ThemeLight:
		SetLightTheme()
	default:
		theme = ThemePlain
		SetPlainTheme()
	}
	return theme
}
