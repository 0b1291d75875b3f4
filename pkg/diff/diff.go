// Package diff compares rendered frames line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Frames returns a unified-style line diff from expected to actual, or an
// empty string when they are equal. A missing final newline is ignored.
func Frames(expected, actual, expectedLabel, actualLabel string) string {
	expected, actual = terminate(expected), terminate(actual)
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", expectedLabel, actualLabel)

	written := 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix + line + "\n")
			written++
		}
	}
	return buf.String()
}

// Changed counts the lines that differ between expected and actual.
func Changed(expected, actual string) int {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(terminate(expected), terminate(actual))
	changed := 0
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines) {
		if d.Type != diffmatchpatch.DiffEqual {
			changed += len(splitLines(d.Text))
		}
	}
	return changed
}

func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
