package cli

import (
	"swipetodo/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()
			path := app.ConfigPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return writeErr(cmd, err)
				}
				path = envOr(config.EnvPrefix+"_CONFIG", p)
			}
			return writeOut(cmd, app, map[string]any{"data": app.cfg, "path": path})
		},
	}
}
