package ui

// RenderPrompt renders the shell prompt. The visible characters are always
// "$" and a space; themed palettes only color the glyph.
func RenderPrompt() string {
	if plain {
		return "$ "
	}
	return PromptStyle.Render("$") + " "
}
