package cli

import (
	"fmt"
	"os"
	"strings"

	"swipetodo/internal/config"
	"swipetodo/internal/format"
	"swipetodo/internal/logs"
	"swipetodo/internal/store"
	"swipetodo/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string

	cfg config.Config
	log *logs.Logger
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "swipetodo",
		Short:         "Swipe-to-dismiss task list (TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  swipetodo

  # Scriptable view of the seed tasks
  swipetodo tasks --add "Buy milk" --query milk

  # Key reference
  swipetodo docs keys
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath, cmd.Flags())
		if err != nil {
			return writeErr(cmd, err)
		}
		level, err := cfg.Log.SlogLevel()
		if err != nil {
			return writeErr(cmd, err)
		}
		l, err := logs.New(logs.Options{File: cfg.Log.File, Level: level, Journal: cfg.Log.Journal})
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		app.log = l
		l.Debug("command start", "cmd", cmd.CommandPath())
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default $SWIPETODO_CONFIG or ~/.config/swipetodo/config.toml)")
	cmd.PersistentFlags().String("format", "json", "Output format (json|edn|text; env SWIPETODO_FORMAT)")
	cmd.PersistentFlags().Bool("pretty", false, "Pretty-print output")
	cmd.PersistentFlags().String("log-file", "", "Append logs to this file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("log-journal", false, "Also log to the systemd journal")
	cmd.PersistentFlags().Bool("no-mouse", false, "Disable mouse input (keyboard only)")
	cmd.PersistentFlags().String("glyphs", "unicode", "Glyph set (unicode|ascii)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// Close releases the logger. Commands defer it so error returns close it too;
// cobra skips post-run hooks when RunE fails.
func (a *App) Close() error {
	if a.log == nil {
		return nil
	}
	err := a.log.Close()
	a.log = nil
	return err
}

func runTUI(cmd *cobra.Command, app *App) error {
	st := store.NewWithTitles(app.cfg.Seed.Tasks)
	err := tui.Run(tui.Options{
		Store:     st,
		Mouse:     app.cfg.UI.Mouse,
		Glyphs:    app.cfg.UI.Glyphs,
		HelpStyle: app.cfg.UI.HelpStyle,
		Logger:    app.log.Logger,
	})
	if err != nil {
		app.log.Error("tui exited", "error", err)
		return writeErr(cmd, fmt.Errorf("run tui: %w", err))
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.cfg.Output.Format, app.cfg.Output.Pretty)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}
