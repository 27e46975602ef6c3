// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Build fields.
	FieldDocument    = "document"
	FieldCommand     = "command"
	FieldPID         = "pid"
	FieldOutcome     = "outcome"
	FieldExitCode    = "exit_code"
	FieldLanguage    = "language"
	FieldTask        = "task"
	FieldProjectRoot = "project_root"
	FieldDiagnostics = "diagnostics"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
