package cli

import "github.com/yaklabco/gradlint/pkg/lint"

// Exit codes for gradlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitBuildErrors indicates checks completed but found errors or
	// failed builds.
	ExitBuildErrors = 1

	// ExitBuildWarnings indicates checks completed but found warnings (when strict mode).
	ExitBuildWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *lint.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitBuildErrors
	}

	if strict && result.HasWarnings() {
		return ExitBuildWarnings
	}

	return ExitSuccess
}
