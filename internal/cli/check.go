package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gradlint/internal/configloader"
	"github.com/yaklabco/gradlint/internal/logging"
	"github.com/yaklabco/gradlint/pkg/config"
	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/document"
	"github.com/yaklabco/gradlint/pkg/lint"
	"github.com/yaklabco/gradlint/pkg/reporter"
)

// ErrBuildIssuesFound is returned when build diagnostics are found.
var ErrBuildIssuesFound = errors.New("build issues found")

type checkFlags struct {
	format    string
	gradleBin string
	noWrapper bool
	extraArgs []string
	strict    bool
	noContext bool
	compact   bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Compile source files and report diagnostics",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Compile Kotlin or Java source files through Gradle and report the
compiler's diagnostics with resolved positions.

Each file is checked against its enclosing Gradle project: gradlint walks
up from the file to find the project root, prefers the project's gradlew
wrapper, and runs the language's compile task.

Examples:
  gradlint check src/main/kotlin/Main.kt     # Check a single file
  gradlint check src/Main.kt src/Util.java   # Check several files
  gradlint check --format json Main.kt       # Output as JSON for editors
  gradlint check --strict Main.kt            # Treat warnings as failures
  gradlint check --no-wrapper Main.kt        # Use gradle from PATH`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	// Map flags to typed config values. Flags whose defaults are the merge
	// zero value pass through as-is; --format defaults to "text", so it only
	// overrides other config sources when explicitly set.
	cliCfg := &config.Config{
		GradleBin: flags.gradleBin,
		NoWrapper: flags.noWrapper,
		ExtraArgs: flags.extraArgs,
		Strict:    flags.strict,
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	svc := lint.NewService(finalCfg)
	defer svc.Shutdown()

	result := checkFiles(ctx, svc, args)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrBuildIssuesFound
	}

	return nil
}

// checkFiles runs the build check for each file sequentially and collects
// the results. Builds for distinct files could run concurrently, but the
// sequential order keeps output deterministic for the CLI.
func checkFiles(ctx context.Context, svc *lint.Service, paths []string) *lint.Result {
	result := lint.NewResult()

	for _, path := range paths {
		result.Add(checkOne(ctx, svc, path))
	}

	return result
}

func checkOne(ctx context.Context, svc *lint.Service, path string) lint.FileReport {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return lint.FileReport{Path: path, Err: fmt.Errorf("resolve path: %w", err)}
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return lint.FileReport{Path: absPath, Err: err}
	}

	doc := document.New(absPath, absPath, content, 1)

	done := make(chan diag.Report, 1)
	if err := svc.Check(ctx, doc, func(r diag.Report) { done <- r }); err != nil {
		return lint.FileReport{Path: absPath, Document: doc, Err: err}
	}

	select {
	case report := <-done:
		return lint.FileReport{Path: absPath, Document: doc, Report: report}
	case <-ctx.Done():
		svc.Cancel(doc)
		return lint.FileReport{Path: absPath, Document: doc, Err: ctx.Err()}
	}
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.gradleBin, "gradle-bin", "", "gradle binary to use when the wrapper is absent or disabled")
	cmd.Flags().BoolVar(&flags.noWrapper, "no-wrapper", false, "skip the project's gradlew wrapper")
	cmd.Flags().StringSliceVar(&flags.extraArgs, "extra-args", nil, "extra arguments appended to the gradle invocation")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
