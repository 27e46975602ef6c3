// Package document models the editor-side view of a source file: its
// content, a precomputed line index, and conversion from compiler-reported
// (line, column) positions to byte spans.
package document

import (
	"path/filepath"

	"github.com/yaklabco/gradlint/pkg/diag"
)

// Document is a snapshot of an open source file. The caller owns the
// content; the document only reads it. Version is advisory: runs started
// against an older version may resolve against newer content, which is
// accepted as best-effort.
type Document struct {
	// ID is the stable identity used for process ownership. Two requests
	// with the same ID compete for the same build slot.
	ID string

	// Path is the file path as known to the build tool.
	Path string

	// Content is the document text at snapshot time.
	Content []byte

	// Version is the editor's revision counter for this document.
	Version int

	lines []LineInfo
}

// New creates a Document and builds its line index.
func New(id, path string, content []byte, version int) *Document {
	return &Document{
		ID:      id,
		Path:    path,
		Content: content,
		Version: version,
		lines:   buildLines(content),
	}
}

// Base returns the file's base name, used by the output grammars to filter
// lines that concern this document.
func (d *Document) Base() string {
	return filepath.Base(d.Path)
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineContent returns the content of a 1-based line, excluding the newline.
// Returns nil if the line number is out of range.
func (d *Document) LineContent(line int) []byte {
	if line < 1 || line > len(d.lines) {
		return nil
	}
	info := d.lines[line-1]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// Resolve converts a 1-based (line, column) position to a byte span covering
// the single character immediately before the position.
//
// Lines past the end of the document anchor at the end of content; columns
// past the end of a line anchor at the line's last character. The returned
// span is [offset-1, offset) where offset is the clamped target position,
// adjusted only at the very start of the document so the span stays within
// bounds. An empty document yields [0, 0).
func (d *Document) Resolve(line, col int) diag.Span {
	if len(d.Content) == 0 {
		return diag.Span{Start: 0, End: 0}
	}

	var offset int
	if line > len(d.lines) {
		offset = len(d.Content)
	} else {
		if line < 1 {
			line = 1
		}
		info := d.lines[line-1]
		if col < 1 {
			col = 1
		}
		offset = info.StartOffset + col - 1
		if offset > info.NewlineStart {
			offset = info.NewlineStart
		}
	}

	if offset < 1 {
		offset = 1
	}
	if offset > len(d.Content) {
		offset = len(d.Content)
	}

	return diag.Span{Start: offset - 1, End: offset}
}
