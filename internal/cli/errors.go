package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// reportedError marks an error that has already been written to stderr.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// ReportError prints err unless a command already did. Cobra's own flag and
// argument errors reach here unprinted.
func ReportError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	var reported reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err.Error())
}
