package main

import (
	"os"

	"swipetodo/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cli.ReportError(cmd, err)
		os.Exit(1)
	}
}
