package runner

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/parser"
)

// Exit codes in the Gradle contract. Zero is a clean build; one is a build
// failure whose output carries compile diagnostics. Everything else, signal
// deaths included, means the tool itself broke.
const (
	exitClean         = 0
	exitCompileFailed = 1
)

// Classify maps a finished build process to an Outcome.
func Classify(cmd *exec.Cmd, waitErr error, output []byte, grammar parser.Grammar, base string) diag.Outcome {
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			// Wait itself failed (I/O error on the capture pipe, for
			// instance); no exit status to interpret.
			return diag.ToolError(fmt.Sprintf("%s: %v", cmd.Path, waitErr))
		}
	}

	state := cmd.ProcessState
	if state == nil {
		return diag.ToolError(fmt.Sprintf("%s: no process state", cmd.Path))
	}

	if !state.Exited() {
		// Killed by a signal.
		return diag.ToolError(fmt.Sprintf("%s (pid %d) terminated: %s",
			cmd.Path, state.Pid(), state.String()))
	}

	switch code := state.ExitCode(); code {
	case exitClean:
		return diag.NoIssues()
	case exitCompileFailed:
		return diag.Issues(grammar.Parse(output, base))
	default:
		return diag.ToolError(fmt.Sprintf("%s (pid %d) exited with code %d",
			cmd.Path, state.Pid(), code))
	}
}
