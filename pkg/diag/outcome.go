package diag

// OutcomeKind discriminates the result of a single build run.
type OutcomeKind int

const (
	// OutcomeNoIssues means the build succeeded; any output is irrelevant.
	OutcomeNoIssues OutcomeKind = iota

	// OutcomeIssues means the build failed with compile diagnostics.
	OutcomeIssues

	// OutcomeToolError means the build tool itself failed (crash, signal,
	// unexpected exit code).
	OutcomeToolError

	// OutcomeSuperseded means a newer run replaced this one before it
	// finished. Superseded outcomes are logged and dropped, never delivered.
	OutcomeSuperseded
)

// String returns a short label for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoIssues:
		return "no-issues"
	case OutcomeIssues:
		return "issues"
	case OutcomeToolError:
		return "tool-error"
	case OutcomeSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one build process.
type Outcome struct {
	Kind OutcomeKind

	// Records holds the parsed diagnostics when Kind is OutcomeIssues.
	Records []Record

	// Err describes the failure when Kind is OutcomeToolError.
	Err string
}

// NoIssues returns a clean outcome.
func NoIssues() Outcome {
	return Outcome{Kind: OutcomeNoIssues}
}

// Issues returns an outcome carrying compile diagnostics.
func Issues(records []Record) Outcome {
	return Outcome{Kind: OutcomeIssues, Records: records}
}

// ToolError returns an outcome describing a build tool failure.
func ToolError(desc string) Outcome {
	return Outcome{Kind: OutcomeToolError, Err: desc}
}

// Superseded returns an outcome for a run replaced by a newer one.
func Superseded() Outcome {
	return Outcome{Kind: OutcomeSuperseded}
}
