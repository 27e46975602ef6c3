package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gradlint/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{
			name:     "kotlin by extension",
			path:     "/src/main/kotlin/MainActivity.kt",
			expected: "kotlin",
		},
		{
			name:     "kotlin script",
			path:     "build.gradle.kts",
			expected: "kotlin",
		},
		{
			name:     "java by extension",
			path:     "/src/main/java/MainActivity.java",
			expected: "java",
		},
		{
			name:     "uppercase extension",
			path:     "Legacy.JAVA",
			expected: "java",
		},
		{
			name:     "go file falls through to enry",
			path:     "main.go",
			content:  "package main\n\nfunc main() {}\n",
			expected: "go",
		},
		{
			name:     "unknown extension without content",
			path:     "notes.xyzzy",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Detect(tt.path, []byte(tt.content))
			if got != tt.expected {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language string
		want     bool
	}{
		{language: "kotlin", want: true},
		{language: "java", want: true},
		{language: "go", want: false},
		{language: "", want: false},
	}

	for _, tt := range tests {
		if got := langdetect.IsSupported(tt.language); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.language, got, tt.want)
		}
	}
}
