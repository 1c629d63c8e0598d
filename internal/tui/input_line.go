package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a text input as one full-width line on the input
// background, with an accent bar when focused.
func renderInputLine(bodyW int, inputView string, focused bool) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// Inputs must stay on one visual line; a stray newline would look like
	// text being inserted while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	mark, markColor := "▏", colorMuted
	if focused {
		mark, markColor = "▌", colorInputFocus
	}
	if glyphs() == glyphSetASCII {
		mark = "|"
	}
	bar := lipgloss.NewStyle().Foreground(markColor).Render(mark)

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		bar+" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the body width; terminate styling so it can't bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
