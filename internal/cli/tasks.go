package cli

import (
	"fmt"

	"swipetodo/internal/model"
	"swipetodo/internal/store"

	"github.com/spf13/cobra"
)

// taskList is the envelope printed by `tasks`.
type taskList struct {
	Data  []model.Task `json:"data"`
	Query string       `json:"query"`
	Total int          `json:"total"`
}

func (l taskList) Lines() []string {
	out := make([]string, 0, len(l.Data))
	for _, t := range l.Data {
		out = append(out, fmt.Sprintf("%d\t%s", t.ID, t.Title))
	}
	return out
}

func newTasksCmd(app *App) *cobra.Command {
	var (
		query   string
		adds    []string
		deletes []int
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Apply adds/deletes to the seed tasks and print the filtered view",
		Long: "Runs the task store without the TUI: seed tasks come from config, then every --add\n" +
			"is applied in order, then every --delete, then --query filters the result.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.Close()
			st := store.NewWithTitles(app.cfg.Seed.Tasks)
			for _, title := range adds {
				if t, ok := st.Add(title); ok {
					app.log.Debug("task added", "id", t.ID)
				}
			}
			for _, id := range deletes {
				if st.Delete(id) {
					app.log.Debug("task deleted", "id", id)
				}
			}
			st.SetQuery(query)

			return writeOut(cmd, app, taskList{Data: st.Filtered(), Query: st.Query(), Total: st.Len()})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive title filter")
	cmd.Flags().StringArrayVar(&adds, "add", nil, "Add a task with this title (repeatable)")
	cmd.Flags().IntSliceVar(&deletes, "delete", nil, "Delete the task with this id (repeatable)")

	return cmd
}
