package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark theme)
var mocha = struct {
	Red, Peach, Yellow, Green, Teal, Blue, Mauve lipgloss.Color
	Text, Subtext, Overlay, Surface, Base        lipgloss.Color
}{
	Red: "#f38ba8", Peach: "#fab387", Yellow: "#f9e2af", Green: "#a6e3a1",
	Teal: "#94e2d5", Blue: "#89b4fa", Mauve: "#cba6f7",
	Text: "#cdd6f4", Subtext: "#bac2de", Overlay: "#7f849c",
	Surface: "#45475a", Base: "#1e1e2e",
}

// Catppuccin Latte (light theme)
var latte = struct {
	Red, Peach, Yellow, Green, Teal, Blue, Mauve lipgloss.Color
	Text, Subtext, Overlay, Surface, Base        lipgloss.Color
}{
	Red: "#d20f39", Peach: "#fe640b", Yellow: "#df8e1d", Green: "#40a02b",
	Teal: "#179299", Blue: "#1e66f5", Mauve: "#8839ef",
	Text: "#4c4f69", Subtext: "#5c5f77", Overlay: "#8c8fa1",
	Surface: "#bcc0cc", Base: "#eff1f5",
}

// ThemePalette holds the current color scheme
type ThemePalette struct {
	Red, Green, Yellow, Blue, Cyan, Peach, Mauve lipgloss.Color
	Text, Subtext, Overlay, Surface, Base        lipgloss.Color
}

var (
	currentTheme ThemePalette
	plain        bool
)

func init() {
	SetPlainTheme()
}

// SetDarkTheme switches to Catppuccin Mocha
func SetDarkTheme() {
	plain = false
	currentTheme = ThemePalette{
		Red: mocha.Red, Green: mocha.Green, Yellow: mocha.Yellow,
		Blue: mocha.Blue, Cyan: mocha.Teal, Peach: mocha.Peach, Mauve: mocha.Mauve,
		Text: mocha.Text, Subtext: mocha.Subtext, Overlay: mocha.Overlay,
		Surface: mocha.Surface, Base: mocha.Base,
	}
	refreshStyles()
}

// SetLightTheme switches to Catppuccin Latte
func SetLightTheme() {
	plain = false
	currentTheme = ThemePalette{
		Red: latte.Red, Green: latte.Green, Yellow: latte.Yellow,
		Blue: latte.Blue, Cyan: latte.Teal, Peach: latte.Peach, Mauve: latte.Mauve,
		Text: latte.Text, Subtext: latte.Subtext, Overlay: latte.Overlay,
		Surface: latte.Surface, Base: latte.Base,
	}
	refreshStyles()
}

// SetPlainTheme disables styling; every style renders its input unchanged.
func SetPlainTheme() {
	plain = true
	refreshStyles()
}

// Semantic styles for the shell. Stage output and the stable diagnostic
// strings are never styled — these only dress the REPL's own messages and
// the prompt glyph.
var (
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	PromptStyle  lipgloss.Style
)

func refreshStyles() {
	if plain {
		empty := lipgloss.NewStyle()
		ErrorStyle = empty
		WarningStyle = empty
		PromptStyle = empty
		return
	}

	// Error text (red, bold)
	ErrorStyle = lipgloss.NewStyle().Foreground(currentTheme.Red).Bold(true)

	// Warning text (peach)
	WarningStyle = lipgloss.NewStyle().Foreground(currentTheme.Peach)

	// Prompt glyph (mauve, bold)
	PromptStyle = lipgloss.NewStyle().Foreground(currentTheme.Mauve).Bold(true)
}
