package config

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate() []byte {
	return []byte(`# gradlint configuration
# See: https://github.com/yaklabco/gradlint

# Gradle binary to use when the project has no wrapper
# gradle_bin: gradle

# Never use the project's gradlew wrapper
# no_wrapper: false

# Compile task per language (defaults: compileKotlin, compileJava)
# tasks:
#   kotlin: compileDebugKotlin
#   java: compileDebugJavaWithJavac

# Extra arguments appended to every build invocation
# extra_args:
#   - --offline
`)
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gradlint configuration
# See: https://github.com/yaklabco/gradlint`
}
