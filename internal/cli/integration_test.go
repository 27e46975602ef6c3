package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gradlint/internal/cli"
	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/lint"
)

// newFakeProject creates a Gradle project whose gradlew wrapper is a shell
// script, plus a Kotlin source file, and returns the source file path.
func newFakeProject(t *testing.T, script string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.gradle.kts"), []byte(""), 0644))

	wrapper := "#!/bin/sh\n" + script + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gradlew"), []byte(wrapper), 0755))

	srcDir := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))

	srcFile := filepath.Join(srcDir, "Main.kt")
	require.NoError(t, os.WriteFile(srcFile, []byte("fun main() {\n    println(\n}\n"), 0644))

	return srcFile
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestIntegration_CheckReportsDiagnostics(t *testing.T) {
	t.Parallel()

	srcFile := newFakeProject(t,
		`echo "e: /any/Main.kt: (2, 5): Expecting ')'"; exit 1`)

	output, err := execute(t, "check", srcFile, "--format", "text", "--color", "never")

	require.ErrorIs(t, err, cli.ErrBuildIssuesFound)
	assert.Contains(t, output, "Main.kt:2:5")
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "Expecting ')'")
}

func TestIntegration_CheckCleanBuild(t *testing.T) {
	t.Parallel()

	srcFile := newFakeProject(t, `exit 0`)

	output, err := execute(t, "check", srcFile, "--format", "json", "--color", "never")

	require.NoError(t, err)
	assert.Contains(t, output, `"no-issues"`)
}

func TestIntegration_CheckStrictWarnings(t *testing.T) {
	t.Parallel()

	script := `echo "w: /any/Main.kt: (1, 2): Unused expression"; exit 1`

	// Warnings alone do not fail the check.
	srcFile := newFakeProject(t, script)
	output, err := execute(t, "check", srcFile, "--format", "text", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, output, "warning")

	// In strict mode they do.
	srcFile = newFakeProject(t, script)
	_, err = execute(t, "check", srcFile, "--strict", "--format", "text", "--color", "never")
	require.ErrorIs(t, err, cli.ErrBuildIssuesFound)
}

func TestIntegration_CheckEnvFormat(t *testing.T) {
	// t.Setenv forbids t.Parallel.
	t.Setenv("GRADLINT_FORMAT", "json")

	srcFile := newFakeProject(t, `exit 0`)

	// No --format flag: its "text" default must not mask the environment.
	output, err := execute(t, "check", srcFile, "--color", "never")

	require.NoError(t, err)
	assert.Contains(t, output, `"no-issues"`)
}

func TestIntegration_CheckToolError(t *testing.T) {
	t.Parallel()

	srcFile := newFakeProject(t, `echo "OOM" 1>&2; exit 137`)

	output, err := execute(t, "check", srcFile, "--format", "text", "--color", "never")

	require.ErrorIs(t, err, cli.ErrBuildIssuesFound)
	assert.Contains(t, output, "build failed")
}

func TestIntegration_CheckMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "Nope.kt")

	output, err := execute(t, "check", missing, "--format", "text", "--color", "never")

	require.ErrorIs(t, err, cli.ErrBuildIssuesFound)
	assert.Contains(t, output, "error")
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	errLoc := diag.Located{Severity: diag.SeverityError, Line: 1, Column: 1}
	warnLoc := diag.Located{Severity: diag.SeverityWarning, Line: 1, Column: 1}

	issues := func(locs ...diag.Located) diag.Report {
		return diag.Report{Kind: diag.OutcomeIssues, Diagnostics: locs}
	}

	tests := []struct {
		name   string
		report lint.FileReport
		strict bool
		want   int
	}{
		{
			name:   "clean build",
			report: lint.FileReport{Path: "a.kt", Report: diag.Report{Kind: diag.OutcomeNoIssues}},
			want:   cli.ExitSuccess,
		},
		{
			name:   "errors",
			report: lint.FileReport{Path: "a.kt", Report: issues(errLoc)},
			want:   cli.ExitBuildErrors,
		},
		{
			name:   "warnings lenient",
			report: lint.FileReport{Path: "a.kt", Report: issues(warnLoc)},
			want:   cli.ExitSuccess,
		},
		{
			name:   "warnings strict",
			report: lint.FileReport{Path: "a.kt", Report: issues(warnLoc)},
			strict: true,
			want:   cli.ExitBuildWarnings,
		},
		{
			name:   "tool error",
			report: lint.FileReport{Path: "a.kt", Report: diag.Report{Kind: diag.OutcomeToolError, Err: "boom"}},
			want:   cli.ExitBuildErrors,
		},
		{
			name:   "file error",
			report: lint.FileReport{Path: "a.kt", Err: errors.New("unreadable")},
			want:   cli.ExitBuildErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := lint.NewResult()
			result.Add(tt.report)
			assert.Equal(t, tt.want, cli.ExitCodeFromResult(result, tt.strict))
		})
	}
}
