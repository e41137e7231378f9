// Package ingestion supplies the raw career-page text that the extraction
// pipeline consumes, and normalizes it into a canonical form.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	controlChars  = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
	horizontalRun = regexp.MustCompile(`[ \t]{2,}`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
)

// CleanText collapses whitespace and control characters into a canonical
// text form: line endings become LF, runs of horizontal whitespace collapse
// to one space, three or more consecutive newlines collapse to two, and the
// result is trimmed. Total and idempotent; empty input yields empty output.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = controlChars.ReplaceAllString(s, "")
	s = horizontalRun.ReplaceAllString(s, " ")

	// Trailing spaces before a newline would survive one pass and alter the
	// next, so strip them per line to keep CleanText idempotent.
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankLineRun.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// IngestFromFile reads a text file and returns its cleaned content.
func IngestFromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
