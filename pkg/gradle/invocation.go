package gradle

import (
	"path/filepath"

	"github.com/yaklabco/gradlint/pkg/config"
)

// Invocation is a fully resolved build tool command: the binary to run, its
// arguments, and the working directory.
type Invocation struct {
	Path string
	Args []string
	Dir  string
}

// defaultTasks maps language identifiers to their Gradle compile task.
//
//nolint:gochecknoglobals // Read-only lookup table.
var defaultTasks = map[string]string{
	"kotlin": "compileKotlin",
	"java":   "compileJava",
}

// NewInvocation builds the compile invocation for a language in the project
// rooted at root. The project's gradlew wrapper is preferred when present
// unless the configuration disables it.
func NewInvocation(root, language string, cfg *config.Config) Invocation {
	task := defaultTasks[language]
	if cfg != nil {
		if override, ok := cfg.Tasks[language]; ok && override != "" {
			task = override
		}
	}

	bin := "gradle"
	if cfg != nil && cfg.GradleBin != "" {
		bin = cfg.GradleBin
	}
	if cfg == nil || !cfg.NoWrapper {
		if wrapper := filepath.Join(root, "gradlew"); fileExists(wrapper) {
			bin = wrapper
		}
	}

	args := []string{task, "--console=plain"}
	if cfg != nil {
		args = append(args, cfg.ExtraArgs...)
	}

	return Invocation{
		Path: bin,
		Args: args,
		Dir:  root,
	}
}
