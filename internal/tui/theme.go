package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// The screen must stay readable on light and dark terminals, so colors are
// adaptive and "faint" is only used on dark backgrounds.

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
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorText       lipgloss.TerminalColor = ac("235", "252")
	colorTaskText   lipgloss.TerminalColor = ac("238", "250")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorInputBg    lipgloss.TerminalColor = ac("254", "234")
	colorInputFocus lipgloss.TerminalColor = ac("27", "69")

	colorAccent   lipgloss.TerminalColor = lipgloss.Color("#4663FF")
	colorAccentFg lipgloss.TerminalColor = lipgloss.Color("#FFFFFF")
	colorDanger   lipgloss.TerminalColor = ac("160", "196")
	colorDangerFg lipgloss.TerminalColor = lipgloss.Color("#FFFFFF")
	// Row tint while a drag is past the dismissal threshold.
	colorArmedBg lipgloss.TerminalColor = ac("224", "52")

	gradientFrom = "#FFFFFF"
	gradientTo   = "#BEC9FF"
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// gradientBar renders text on a left-to-right background blend between the
// two gradient stops, one color per cell.
func gradientBar(text string, width int) string {
	if width < 1 {
		return ""
	}
	from, err1 := colorful.Hex(gradientFrom)
	to, err2 := colorful.Hex(gradientTo)
	runes := []rune(" " + text)
	if err1 != nil || err2 != nil || lipgloss.ColorProfile() == termenv.Ascii {
		return lipgloss.NewStyle().Bold(true).Width(width).Render(string(runes))
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		ch := " "
		if i < len(runes) {
			ch = string(runes[i])
		}
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		bg := from.BlendLab(to, t).Clamped().Hex()
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(bg)).
			Render(ch))
	}
	return b.String()
}

// applyColorProfilePreference honors NO_COLOR and otherwise trusts the
// terminal, upgrading when TERM/COLORTERM advertise more than detection found.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) SWIPETODO_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg")
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SWIPETODO_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
