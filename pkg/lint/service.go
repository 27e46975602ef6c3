// Package lint is the editor-facing check service. It ties language
// detection, invocation building, the process controller, and position
// resolution together into a single asynchronous Check operation.
package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/gradlint/internal/logging"
	"github.com/yaklabco/gradlint/pkg/config"
	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/document"
	"github.com/yaklabco/gradlint/pkg/gradle"
	"github.com/yaklabco/gradlint/pkg/langdetect"
	"github.com/yaklabco/gradlint/pkg/parser"
	"github.com/yaklabco/gradlint/pkg/runner"
)

// Service runs build checks against documents and delivers position-resolved
// reports. It is safe for concurrent use.
type Service struct {
	controller *runner.Controller
	grammars   *parser.Registry
	cfg        *config.Config
}

// NewService creates a Service with the built-in grammars.
func NewService(cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Service{
		controller: runner.New(),
		grammars:   parser.NewRegistry(),
		cfg:        cfg,
	}
}

// Check starts a build for the document and invokes onDone with the
// resolved report when it completes. A newer Check for the same document
// supersedes the running one, whose onDone then never fires.
//
// Errors detecting the language, locating the project, or launching the
// tool are returned synchronously.
func (s *Service) Check(ctx context.Context, doc *document.Document, onDone func(diag.Report)) error {
	language := langdetect.Detect(doc.Path, doc.Content)
	grammar, ok := s.grammars.For(language)
	if !ok {
		return fmt.Errorf("no build grammar for %s (language %q)", doc.Path, language)
	}

	root, err := gradle.FindRoot(doc.Path)
	if err != nil {
		return fmt.Errorf("locate project: %w", err)
	}

	inv := gradle.NewInvocation(root, language, s.cfg)
	logging.FromContext(ctx).Debug("check starting",
		logging.FieldDocument, doc.ID,
		logging.FieldLanguage, language,
		logging.FieldProjectRoot, root,
		logging.FieldCommand, inv.Path,
	)

	return s.controller.Start(ctx, doc, inv, grammar,
		func(d *document.Document, outcome diag.Outcome) {
			onDone(resolve(d, outcome))
		})
}

// Cancel stops any running check for the document.
func (s *Service) Cancel(doc *document.Document) {
	s.controller.Cancel(doc)
}

// Shutdown stops all running checks.
func (s *Service) Shutdown() {
	s.controller.Shutdown()
}

// resolve converts a classified outcome into a caller-facing report,
// resolving each record's (line, column) against the document content.
func resolve(doc *document.Document, outcome diag.Outcome) diag.Report {
	report := diag.Report{Kind: outcome.Kind, Err: outcome.Err}

	if outcome.Kind != diag.OutcomeIssues {
		return report
	}

	report.Diagnostics = make([]diag.Located, 0, len(outcome.Records))
	for _, rec := range outcome.Records {
		report.Diagnostics = append(report.Diagnostics, diag.Located{
			Span:     doc.Resolve(rec.Line, rec.Column),
			Severity: rec.Severity,
			Line:     rec.Line,
			Column:   rec.Column,
			Message:  rec.Message,
		})
	}

	return report
}
