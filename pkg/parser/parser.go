// Package parser turns raw build tool output into diagnostic records.
// Each supported compiler has its own line-oriented grammar; parsing is
// best-effort and never fails, lines that don't match are skipped.
package parser

import "github.com/yaklabco/gradlint/pkg/diag"

// Grammar parses the merged output of one build run.
type Grammar interface {
	// Language returns the language identifier this grammar handles.
	Language() string

	// Parse extracts diagnostics from build output. Only lines containing
	// base (the document's file base name) are considered; this substring
	// filter can match unrelated files with the same name, which is an
	// accepted limitation. Records preserve the input line order.
	Parse(output []byte, base string) []diag.Record
}

// Registry maps language identifiers to grammars.
type Registry struct {
	grammars map[string]Grammar
}

// NewRegistry returns a registry with the built-in grammars registered.
func NewRegistry() *Registry {
	r := &Registry{grammars: make(map[string]Grammar)}
	r.Register(KotlinGrammar{})
	r.Register(JavaGrammar{})
	return r
}

// Register adds a grammar, replacing any previous one for the same language.
func (r *Registry) Register(g Grammar) {
	r.grammars[g.Language()] = g
}

// For returns the grammar for a language identifier.
func (r *Registry) For(language string) (Grammar, bool) {
	g, ok := r.grammars[language]
	return g, ok
}

// Languages returns the registered language identifiers.
func (r *Registry) Languages() []string {
	langs := make([]string, 0, len(r.grammars))
	for lang := range r.grammars {
		langs = append(langs, lang)
	}
	return langs
}
