package parser_test

import (
	"reflect"
	"testing"

	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/parser"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := parser.NewRegistry()

	for _, lang := range []string{"kotlin", "java"} {
		g, ok := reg.For(lang)
		if !ok {
			t.Fatalf("For(%q) not found", lang)
		}
		if g.Language() != lang {
			t.Errorf("Language() = %q, want %q", g.Language(), lang)
		}
	}

	if _, ok := reg.For("scala"); ok {
		t.Error("For(scala) should not be registered")
	}
}

func TestKotlinGrammar_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		base   string
		want   []diag.Record
	}{
		{
			name:   "error line",
			output: "e: /kotlin/MainActivity.kt: (10, 46): Expecting ')'",
			base:   "MainActivity.kt",
			want: []diag.Record{
				{Severity: diag.SeverityError, Line: 10, Column: 46, Message: "Expecting ')'"},
			},
		},
		{
			name:   "warning line",
			output: "w: /kotlin/MainActivity.kt: (3, 9): Variable 'x' is never used",
			base:   "MainActivity.kt",
			want: []diag.Record{
				{Severity: diag.SeverityWarning, Line: 3, Column: 9, Message: "Variable 'x' is never used"},
			},
		},
		{
			name: "mixed output preserves order and skips unrelated lines",
			output: "> Task :compileKotlin FAILED\n" +
				"e: /kotlin/MainActivity.kt: (10, 46): Expecting ')'\n" +
				"e: /kotlin/Other.kt: (1, 1): Unresolved reference\n" +
				"w: /kotlin/MainActivity.kt: (12, 5): Unused import\n" +
				"FAILURE: Build failed with an exception.",
			base: "MainActivity.kt",
			want: []diag.Record{
				{Severity: diag.SeverityError, Line: 10, Column: 46, Message: "Expecting ')'"},
				{Severity: diag.SeverityWarning, Line: 12, Column: 5, Message: "Unused import"},
			},
		},
		{
			name:   "message containing colons is rejoined",
			output: "e: /kotlin/MainActivity.kt: (2, 1): Type mismatch: inferred type is Int but String was expected",
			base:   "MainActivity.kt",
			want: []diag.Record{
				{
					Severity: diag.SeverityError,
					Line:     2,
					Column:   1,
					Message:  "Type mismatch: inferred type is Int but String was expected",
				},
			},
		},
		{
			name:   "malformed position is skipped",
			output: "e: /kotlin/MainActivity.kt: (abc, 1): nope\ne: /kotlin/MainActivity.kt: 10, 46: nope",
			base:   "MainActivity.kt",
			want:   nil,
		},
		{
			name:   "too few fields is skipped",
			output: "error in MainActivity.kt",
			base:   "MainActivity.kt",
			want:   nil,
		},
		{
			name:   "base name not present yields nothing",
			output: "e: /kotlin/Other.kt: (10, 46): Expecting ')'",
			base:   "MainActivity.kt",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			base:   "MainActivity.kt",
			want:   nil,
		},
	}

	grammar := parser.KotlinGrammar{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.Parse([]byte(tt.output), tt.base)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestJavaGrammar_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		base   string
		want   []diag.Record
	}{
		{
			name:   "error line keeps raw message field",
			output: "/java/MainActivity.java:11: error: ';' expected",
			base:   "MainActivity.java",
			want: []diag.Record{
				{Severity: diag.SeverityError, Line: 11, Column: 1, Message: " error"},
			},
		},
		{
			name: "multiple diagnostics preserve order",
			output: "/java/MainActivity.java:11: error: ';' expected\n" +
				"        int x = 1\n" +
				"/java/MainActivity.java:14: error: cannot find symbol",
			base: "MainActivity.java",
			want: []diag.Record{
				{Severity: diag.SeverityError, Line: 11, Column: 1, Message: " error"},
				{Severity: diag.SeverityError, Line: 14, Column: 1, Message: " error"},
			},
		},
		{
			name:   "note line without numeric field is skipped",
			output: "Note: MainActivity.java uses unchecked or unsafe operations.",
			base:   "MainActivity.java",
			want:   nil,
		},
		{
			name:   "unrelated file is skipped",
			output: "/java/Other.java:3: error: missing return statement",
			base:   "MainActivity.java",
			want:   nil,
		},
	}

	grammar := parser.JavaGrammar{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := grammar.Parse([]byte(tt.output), tt.base)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
