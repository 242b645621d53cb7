package cli

import (
	"context"
	"errors"
	"io"

	nerrors "github.com/matzehuels/nestgraph/pkg/errors"
)

// Exit codes returned by the nestgraph binary.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitViolation   = 2   // check found edges outside their containing node
	ExitInterrupted = 130 // standard shell convention for SIGINT
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case nerrors.Is(err, nerrors.ErrCodeInvariantViolation):
		return ExitViolation
	default:
		return ExitError
	}
}

// PrintError writes err as a styled error line. Coded errors are shown
// without their code prefix, and the code is added as a detail line.
func PrintError(w io.Writer, err error) {
	printError(w, "%s", nerrors.UserMessage(err))
	if code := nerrors.GetCode(err); code != "" {
		printDetail(w, "code: %s", code)
	}
}
