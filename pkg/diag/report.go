package diag

// Report is the caller-facing result of a check: the outcome of the build
// with diagnostic positions resolved against the document content.
// Superseded runs never produce a Report.
type Report struct {
	Kind OutcomeKind

	// Diagnostics holds position-resolved records when Kind is OutcomeIssues,
	// in the order they appeared in the build output.
	Diagnostics []Located

	// Err describes the failure when Kind is OutcomeToolError.
	Err string
}

// HasIssues reports whether the check produced compile diagnostics.
func (r Report) HasIssues() bool {
	return r.Kind == OutcomeIssues && len(r.Diagnostics) > 0
}

// Failed reports whether the build tool itself failed.
func (r Report) Failed() bool {
	return r.Kind == OutcomeToolError
}
