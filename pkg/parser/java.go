package parser

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gradlint/pkg/diag"
)

// JavaGrammar parses javac output lines of the form:
//
//	/path/MainActivity.java:11: error: ';' expected
//
// javac reports no column, so the column is fixed at 1 and the severity is
// always error. The message is the colon field immediately after the line
// number, kept verbatim.
type JavaGrammar struct{}

// Language implements Grammar.
func (JavaGrammar) Language() string { return "java" }

// Parse implements Grammar.
func (g JavaGrammar) Parse(output []byte, base string) []diag.Record {
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

func (JavaGrammar) parseLine(line string) (diag.Record, bool) {
	fields := strings.Split(line, ":")
	if len(fields) < 3 {
		return diag.Record{}, false
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return diag.Record{}, false
	}

	return diag.Record{
		Severity: diag.SeverityError,
		Line:     row,
		Column:   1,
		Message:  fields[2],
	}, true
}
