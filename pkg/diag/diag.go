// Package diag defines the diagnostic value types shared by the parser,
// process controller, and reporters.
package diag

// Severity represents the severity level of a build diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Record is a single diagnostic as parsed from compiler output.
// Line and Column are 1-based positions in the source document.
type Record struct {
	Severity Severity
	Line     int
	Column   int
	Message  string
}

// Span is a half-open byte range [Start, End) in a document's content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Located is a diagnostic whose position has been resolved against the
// document content. Line and Column carry the original 1-based position for
// display purposes.
type Located struct {
	Span     Span
	Severity Severity
	Line     int
	Column   int
	Message  string
}
