package cli

import (
	"errors"
	"fmt"

	"swipetodo/internal/docs"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, err := docs.Lookup(topic)
			if err != nil {
				var nf docs.NotFoundError
				if errors.As(err, &nf) {
					err = fmt.Errorf("%w (run `swipetodo docs` to list topics)", err)
				}
				return writeErr(cmd, err)
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), docs.Render(body, width, app.cfg.UI.HelpStyle))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")

	return cmd
}
