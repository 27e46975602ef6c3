// Package runner owns the lifecycle of build tool processes. Each document
// has at most one live build at a time; starting a new one kills and
// supersedes the old. Results arrive asynchronously through a callback.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gradlint/internal/logging"
	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/document"
	"github.com/yaklabco/gradlint/pkg/gradle"
	"github.com/yaklabco/gradlint/pkg/parser"
)

// Callback receives the classified outcome of a completed build run.
// Superseded runs are never delivered.
type Callback func(doc *document.Document, outcome diag.Outcome)

// run tracks one live build process. The struct pointer doubles as the run's
// identity: the completion path compares it against the controller's current
// entry to detect supersession.
type run struct {
	cmd      *exec.Cmd
	buf      *bytes.Buffer
	doc      *document.Document
	grammar  parser.Grammar
	callback Callback
}

// Controller enforces the one-live-build-per-document rule.
type Controller struct {
	mu     sync.Mutex
	runs   map[string]*run
	logger *log.Logger
}

// New creates a Controller.
func New() *Controller {
	return &Controller{
		runs:   make(map[string]*run),
		logger: logging.Default(),
	}
}

// Start launches a build for the document and returns without waiting for
// it. Any build already running for the same document ID is killed and its
// eventual completion discarded. The callback fires exactly once, from the
// run's completion goroutine, unless the run itself is superseded or
// cancelled first.
//
// A launch failure (missing binary, bad working directory) is returned
// synchronously; classification only applies to processes that ran.
func (c *Controller) Start(
	ctx context.Context,
	doc *document.Document,
	inv gradle.Invocation,
	grammar parser.Grammar,
	callback Callback,
) error {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir

	// stdout and stderr share one buffer. os/exec serializes writes to
	// identical writers, so the merge needs no extra locking.
	buf := &bytes.Buffer{}
	cmd.Stdout = buf
	cmd.Stderr = buf

	newRun := &run{
		cmd:      cmd,
		buf:      buf,
		doc:      doc,
		grammar:  grammar,
		callback: callback,
	}

	c.mu.Lock()
	if prior, ok := c.runs[doc.ID]; ok {
		// Unregister before spawning the replacement so the killed run's
		// completion sees itself non-current even if the spawn below fails.
		c.kill(prior)
		delete(c.runs, doc.ID)
	}
	if err := cmd.Start(); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("start %s: %w", inv.Path, err)
	}
	c.runs[doc.ID] = newRun
	c.mu.Unlock()

	c.logger.Debug("build started",
		logging.FieldDocument, doc.ID,
		logging.FieldCommand, inv.Path,
		logging.FieldPID, cmd.Process.Pid,
	)

	go c.await(newRun)
	return nil
}

// Cancel kills the current build for a document, if any, without starting a
// replacement. The killed run's outcome is discarded.
func (c *Controller) Cancel(doc *document.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prior, ok := c.runs[doc.ID]; ok {
		c.kill(prior)
		delete(c.runs, doc.ID)
	}
}

// Shutdown kills every live build. Outcomes of killed runs are discarded.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, r := range c.runs {
		c.kill(r)
		delete(c.runs, id)
	}
}

// kill terminates a run's process. Kill failures are logged and ignored: the
// process may already have exited, and supersession does not depend on the
// kill succeeding. Callers must hold c.mu.
func (c *Controller) kill(r *run) {
	if err := r.cmd.Process.Kill(); err != nil {
		c.logger.Debug("kill failed",
			logging.FieldDocument, r.doc.ID,
			logging.FieldPID, r.cmd.Process.Pid,
			logging.FieldError, err,
		)
	}
}

// await waits for a run's process, decides whether the run is still current,
// and delivers the classified outcome. The capture buffer is released on
// every path.
func (c *Controller) await(r *run) {
	waitErr := r.cmd.Wait()

	c.mu.Lock()
	current := c.runs[r.doc.ID] == r
	if current {
		delete(c.runs, r.doc.ID)
	}
	c.mu.Unlock()

	if !current {
		r.buf = nil
		c.logger.Debug("build superseded",
			logging.FieldDocument, r.doc.ID,
			logging.FieldOutcome, diag.Superseded().Kind.String(),
		)
		return
	}

	output := r.buf.Bytes()
	r.buf = nil

	outcome := Classify(r.cmd, waitErr, output, r.grammar, r.doc.Base())
	c.logger.Debug("build finished",
		logging.FieldDocument, r.doc.ID,
		logging.FieldOutcome, outcome.Kind.String(),
		logging.FieldDiagnostics, len(outcome.Records),
	)

	r.callback(r.doc, outcome)
}
