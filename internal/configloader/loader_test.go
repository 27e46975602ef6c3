package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gradlint/pkg/config"
)

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	configPath := filepath.Join(dir, ".gradlint.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Create temp directory with no config files
	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	// Check defaults are applied
	if result.Config.GradleBin != "gradle" {
		t.Errorf("expected gradle_bin %q, got %q", "gradle", result.Config.GradleBin)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Note: format is a CLI-only option (yaml:"-"), so it won't be loaded from file
	writeProjectConfig(t, tmpDir, `
gradle_bin: /opt/gradle/bin/gradle
no_wrapper: true
tasks:
  kotlin: compileDebugKotlin
extra_args: ["--offline"]
`)

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.GradleBin != "/opt/gradle/bin/gradle" {
		t.Errorf("expected gradle_bin from project config, got %q", result.Config.GradleBin)
	}
	if !result.Config.NoWrapper {
		t.Error("expected no_wrapper true from project config")
	}
	if got := result.Config.Tasks["kotlin"]; got != "compileDebugKotlin" {
		t.Errorf("expected tasks.kotlin %q, got %q", "compileDebugKotlin", got)
	}
	if len(result.Config.ExtraArgs) != 1 || result.Config.ExtraArgs[0] != "--offline" {
		t.Errorf("expected extra_args [--offline], got %v", result.Config.ExtraArgs)
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
gradle_bin: gradle-8.5
`
	customPath := filepath.Join(tmpDir, "custom-config.yml")
	if err := os.WriteFile(customPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       customPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.GradleBin != "gradle-8.5" {
		t.Errorf("expected gradle_bin %q, got %q", "gradle-8.5", result.Config.GradleBin)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
gradle_bin: project-gradle
tasks:
  java: compileJavaProject
`)

	explicitPath := filepath.Join(tmpDir, "explicit.yml")
	if err := os.WriteFile(explicitPath, []byte("gradle_bin: explicit-gradle\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       explicitPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.GradleBin != "explicit-gradle" {
		t.Errorf("expected explicit config to win, got gradle_bin %q", result.Config.GradleBin)
	}
	// Task overrides from the project config survive the merge
	if got := result.Config.Tasks["java"]; got != "compileJavaProject" {
		t.Errorf("expected tasks.java from project config, got %q", got)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
gradle_bin: project-gradle
extra_args: ["--offline"]
`)

	ctx := context.Background()
	cliCfg := &config.Config{
		GradleBin: "cli-gradle",
		NoWrapper: true,
		Format:    config.FormatJSON,
		Strict:    true,
	}
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
		CLIConfig:          cliCfg,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// CLI should override project config
	if result.Config.GradleBin != "cli-gradle" {
		t.Errorf("expected gradle_bin %q (CLI override), got %q", "cli-gradle", result.Config.GradleBin)
	}
	if !result.Config.NoWrapper {
		t.Error("expected no_wrapper true (CLI override)")
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json (CLI override), got %q", result.Config.Format)
	}
	if !result.Config.Strict {
		t.Error("expected strict true (CLI override)")
	}
	// Untouched project values survive
	if len(result.Config.ExtraArgs) != 1 || result.Config.ExtraArgs[0] != "--offline" {
		t.Errorf("expected extra_args from project config, got %v", result.Config.ExtraArgs)
	}
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, "gradle_bin: project-gradle\n")

	t.Setenv("GRADLINT_GRADLE_BIN", "env-gradle")
	t.Setenv("GRADLINT_EXTRA_ARGS", "--offline, --stacktrace")

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.GradleBin != "env-gradle" {
		t.Errorf("expected gradle_bin %q (env override), got %q", "env-gradle", result.Config.GradleBin)
	}
	want := []string{"--offline", "--stacktrace"}
	if len(result.Config.ExtraArgs) != len(want) {
		t.Fatalf("expected extra_args %v, got %v", want, result.Config.ExtraArgs)
	}
	for i, arg := range want {
		if result.Config.ExtraArgs[i] != arg {
			t.Errorf("extra_args[%d] = %q, want %q", i, result.Config.ExtraArgs[i], arg)
		}
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
tasks:
  kotlin: ""
`)

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected validation error for blank task name")
	}
}

func TestLoad_WarnsUnknownTaskLanguage(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	writeProjectConfig(t, tmpDir, `
tasks:
  scala: compileScala
`)

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) == 0 {
		t.Error("expected warning about unknown task language")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	opts := LoadOptions{
		WorkingDir:         t.TempDir(),
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(tmpDir, "app", "src")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Config above the VCS root must not be picked up; from inside the
	// repo the search stops at tmpDir.
	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != "" {
		t.Errorf("expected no config, got %q", found)
	}

	// A config inside the repo is found from a nested directory.
	writeProjectConfig(t, tmpDir, "no_wrapper: true\n")
	found, err = FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if found != filepath.Join(tmpDir, ".gradlint.yml") {
		t.Errorf("expected config at repo root, got %q", found)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	mid := &config.Config{GradleBin: "mid-gradle", Tasks: map[string]string{"kotlin": "a"}}
	top := &config.Config{Tasks: map[string]string{"java": "b"}}

	merged := MergeAll(base, mid, top)

	if merged.GradleBin != "mid-gradle" {
		t.Errorf("GradleBin = %q, want %q", merged.GradleBin, "mid-gradle")
	}
	if merged.Tasks["kotlin"] != "a" || merged.Tasks["java"] != "b" {
		t.Errorf("Tasks = %v, want both overrides", merged.Tasks)
	}
}
