package parser

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gradlint/pkg/diag"
)

// KotlinGrammar parses kotlinc output lines of the form:
//
//	e: /path/MainActivity.kt: (10, 46): Expecting ')'
//
// The first colon field is a one-character severity marker ("e" for error,
// anything else warning), the third is the parenthesized (line, column)
// pair, and everything after forms the message.
type KotlinGrammar struct{}

// Language implements Grammar.
func (KotlinGrammar) Language() string { return "kotlin" }

// Parse implements Grammar.
func (g KotlinGrammar) Parse(output []byte, base string) []diag.Record {
	var records []diag.Record
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, base) {
			continue
		}
		if rec, ok := g.parseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records
}

func (KotlinGrammar) parseLine(line string) (diag.Record, bool) {
	fields := strings.Split(line, ":")
	if len(fields) < 4 {
		return diag.Record{}, false
	}

	severity := diag.SeverityWarning
	if fields[0] == "e" {
		severity = diag.SeverityError
	}

	row, col, ok := parsePosition(fields[2])
	if !ok {
		return diag.Record{}, false
	}

	message := strings.TrimSpace(strings.Join(fields[3:], ":"))

	return diag.Record{
		Severity: severity,
		Line:     row,
		Column:   col,
		Message:  message,
	}, true
}

// parsePosition parses a " (row, col)" field into its two numbers.
func parsePosition(field string) (int, int, bool) {
	trimmed := strings.TrimSpace(field)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return 0, 0, false
	}

	pair := strings.Split(trimmed[1:len(trimmed)-1], ", ")
	if len(pair) != 2 {
		return 0, 0, false
	}

	row, err := strconv.Atoi(pair[0])
	if err != nil {
		return 0, 0, false
	}
	col, err := strconv.Atoi(pair[1])
	if err != nil {
		return 0, 0, false
	}

	return row, col, true
}
