// Package langdetect identifies the programming language of a source file.
// It uses go-enry with a fast extension check first, since the supported
// build grammars are keyed by language identifier.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers for the languages the build grammars understand.
const (
	LangKotlin = "kotlin"
	LangJava   = "java"
)

// Detect returns the language identifier for a source file.
// Returns an empty string when the language cannot be determined.
func Detect(path string, content []byte) string {
	// Extension is authoritative for the languages we care about.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kt", ".kts":
		return LangKotlin
	case ".java":
		return LangJava
	}

	if len(content) == 0 {
		return ""
	}

	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return ""
	}
	return normalize(lang)
}

// IsSupported reports whether a detected language has a build grammar.
func IsSupported(language string) bool {
	return language == LangKotlin || language == LangJava
}

// normalize converts go-enry language names to lowercase identifiers.
func normalize(lang string) string {
	return strings.ToLower(lang)
}
