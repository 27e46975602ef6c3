package document_test

import (
	"testing"

	"github.com/yaklabco/gradlint/pkg/diag"
	"github.com/yaklabco/gradlint/pkg/document"
)

func TestBase(t *testing.T) {
	t.Parallel()

	doc := document.New("id", "/src/main/kotlin/MainActivity.kt", []byte("x"), 1)
	if got := doc.Base(); got != "MainActivity.kt" {
		t.Errorf("Base() = %q, want %q", got, "MainActivity.kt")
	}
}

func TestLineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "single line no newline", content: "abc", want: 1},
		{name: "single line with newline", content: "abc\n", want: 2},
		{name: "three lines", content: "a\nb\nc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := document.New("id", "f.kt", []byte(tt.content), 1)
			if got := doc.LineCount(); got != tt.want {
				t.Errorf("LineCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	doc := document.New("id", "f.kt", []byte("first\r\nsecond\nthird"), 1)

	tests := []struct {
		line int
		want string
	}{
		{line: 1, want: "first"},
		{line: 2, want: "second"},
		{line: 3, want: "third"},
	}

	for _, tt := range tests {
		if got := string(doc.LineContent(tt.line)); got != tt.want {
			t.Errorf("LineContent(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}

	if got := doc.LineContent(0); got != nil {
		t.Errorf("LineContent(0) = %q, want nil", got)
	}
	if got := doc.LineContent(4); got != nil {
		t.Errorf("LineContent(4) = %q, want nil", got)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	// Offsets: "fun main() {\n" is bytes 0..12, second line starts at 13.
	content := "fun main() {\n    println(x)\n}\n"

	tests := []struct {
		name string
		line int
		col  int
		want diag.Span
	}{
		{
			name: "middle of first line",
			line: 1,
			col:  5,
			// offset 4, span covers the byte before the position
			want: diag.Span{Start: 3, End: 4},
		},
		{
			name: "column one of first line clamps inside document",
			line: 1,
			col:  1,
			want: diag.Span{Start: 0, End: 1},
		},
		{
			name: "column one of second line",
			line: 2,
			col:  1,
			want: diag.Span{Start: 12, End: 13},
		},
		{
			name: "column past end of line anchors at line end",
			line: 1,
			col:  99,
			// line 1 content ends at offset 12 (before the newline)
			want: diag.Span{Start: 11, End: 12},
		},
		{
			name: "line past end of document anchors at content end",
			line: 50,
			col:  3,
			want: diag.Span{Start: len(content) - 1, End: len(content)},
		},
	}

	doc := document.New("id", "f.kt", []byte(content), 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := doc.Resolve(tt.line, tt.col)
			if got != tt.want {
				t.Errorf("Resolve(%d, %d) = %+v, want %+v", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestResolve_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := document.New("id", "f.kt", nil, 1)
	got := doc.Resolve(1, 1)
	want := diag.Span{Start: 0, End: 0}
	if got != want {
		t.Errorf("Resolve(1, 1) = %+v, want %+v", got, want)
	}
}

func TestResolve_CRLF(t *testing.T) {
	t.Parallel()

	doc := document.New("id", "f.java", []byte("ab\r\ncd"), 1)

	// Column past EOL on a CRLF line must anchor before the \r.
	got := doc.Resolve(1, 10)
	want := diag.Span{Start: 1, End: 2}
	if got != want {
		t.Errorf("Resolve(1, 10) = %+v, want %+v", got, want)
	}

	got = doc.Resolve(2, 2)
	want = diag.Span{Start: 4, End: 5}
	if got != want {
		t.Errorf("Resolve(2, 2) = %+v, want %+v", got, want)
	}
}
