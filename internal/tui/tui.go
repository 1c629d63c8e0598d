package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference(opts.Glyphs)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		// Cell motion reports movement while a button is held, which is all a drag needs.
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	m := newAppModel(opts)
	if opts.Logger != nil {
		opts.Logger.Info("tui start", "tasks", m.h.Store().Len(), "mouse", opts.Mouse)
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	return err
}
