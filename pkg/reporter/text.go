package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gradlint/internal/ui/pretty"
	"github.com/yaklabco/gradlint/pkg/document"
	"github.com/yaklabco/gradlint/pkg/lint"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *lint.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		r.writeSummary(result.Stats)
	}

	return total, nil
}

// reportFile writes one file's diagnostics, grouped under a file header.
func (r *TextReporter) reportFile(file lint.FileReport) int {
	path := displayPath(file.Path, r.opts.WorkingDir)

	if file.Err != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Err)),
		)
		return 0
	}

	if file.Report.Failed() {
		fmt.Fprint(r.bw, r.styles.FormatBuildError(path, file.Report.Err))
		return 0
	}

	diagnostics := file.Report.Diagnostics
	if len(diagnostics) == 0 {
		return 0
	}

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))

	for _, loc := range diagnostics {
		var sourceLine string
		if r.opts.ShowContext {
			sourceLine = getSourceLine(file.Document, loc.Line)
		}
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(path, loc, r.opts.ShowContext, sourceLine))
	}

	// Blank line between files
	fmt.Fprintln(r.bw)

	return len(diagnostics)
}

// writeSummary writes a one-line aggregate summary.
func (r *TextReporter) writeSummary(stats lint.Stats) {
	if stats.DiagnosticsTotal == 0 && stats.FilesErrored == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render(
			fmt.Sprintf("%d files checked, no issues found", stats.FilesChecked)))
		return
	}

	line := fmt.Sprintf("%d files checked, %d issues in %d files",
		stats.FilesChecked, stats.DiagnosticsTotal, stats.FilesWithIssues)
	if stats.FilesErrored > 0 {
		line += fmt.Sprintf(", %d builds failed", stats.FilesErrored)
	}
	fmt.Fprintln(r.bw, r.styles.Failure.Render(line))
}

// getSourceLine extracts a specific line from the document's pre-computed
// line index. This is O(1) per call.
func getSourceLine(doc *document.Document, lineNum int) string {
	if doc == nil {
		return ""
	}
	content := doc.LineContent(lineNum)
	if content == nil {
		return ""
	}
	return string(content)
}
