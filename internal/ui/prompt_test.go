package ui

import (
	"strings"
	"testing"
)

func TestRenderPrompt_Plain(t *testing.T) {
	SetPlainTheme()

	if got := RenderPrompt(); got != "$ " {
		t.Errorf("RenderPrompt() = %q, want %q", got, "$ ")
	}
}

func TestRenderPrompt_ThemedKeepsGlyphs(t *testing.T) {
	SetDarkTheme()
	defer SetPlainTheme()

	got := RenderPrompt()
	if !strings.Contains(got, "$") || !strings.HasSuffix(got, " ") {
		t.Errorf("themed prompt lost its visible characters: %q", got)
	}
}

func TestApply_UnknownThemeFallsBackToPlain(t *testing.T) {
	if theme := Apply("neon"); theme != ThemePlain {
		t.Errorf("Apply(neon) = %q, want plain", theme)
	}
	if got := RenderPrompt(); got != "$ " {
		t.Errorf("RenderPrompt() after unknown theme = %q, want %q", got, "$ ")
	}
}
