package lint

import (
	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/document"
)

// FileReport is the check result for one file.
type FileReport struct {
	Path   string
	Report diag.Report

	// Document is the checked document, kept for source-context rendering.
	// May be nil when the file could not be read.
	Document *document.Document

	// Err holds failures that prevented the check from running at all
	// (unreadable file, no project, launch failure).
	Err error
}

// Stats aggregates check statistics across files.
type Stats struct {
	FilesChecked     int
	FilesWithIssues  int
	FilesErrored     int
	DiagnosticsTotal int

	// BySeverity counts diagnostics keyed by severity string.
	BySeverity map[string]int
}

// Result collects per-file reports and aggregate stats for a check run.
type Result struct {
	Files []FileReport
	Stats Stats
}

// NewResult returns an empty Result with initialized stats.
func NewResult() *Result {
	return &Result{
		Stats: Stats{BySeverity: make(map[string]int)},
	}
}

// Add accumulates one file's report into the result.
func (r *Result) Add(fr FileReport) {
	r.Files = append(r.Files, fr)
	r.Stats.FilesChecked++

	if fr.Err != nil || fr.Report.Failed() {
		r.Stats.FilesErrored++
		return
	}

	if fr.Report.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	for _, loc := range fr.Report.Diagnostics {
		r.Stats.DiagnosticsTotal++
		r.Stats.BySeverity[string(loc.Severity)]++
	}
}

// HasFailures reports whether any file had error-severity diagnostics or a
// failed check.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.BySeverity[string(diag.SeverityError)] > 0
}

// HasWarnings reports whether any warning-severity diagnostics were found.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return r.Stats.BySeverity[string(diag.SeverityWarning)] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}
