package innerdoc

import (
	"strings"
	"unicode"
)

// LineScanner is the permissive extraction strategy. It scans raw lines for
// `//!` markers and never fails, whatever the input; text without markers
// simply yields no documentation.
//
// A `//!` line contributes everything after the marker with at most one
// leading space removed, so "//! text" and "//!text" both yield "text" while
// "//!  text" keeps one space. Once the first marker has been seen, blank
// lines contribute empty fragments and other `//` comment lines are skipped;
// any other non-blank line ends the scan. Trailing empty fragments are
// dropped before the fragments are joined with newlines.
type LineScanner struct{}

// Extract implements Extractor. The returned error is always nil.
func (LineScanner) Extract(src string) (string, error) {
	var docs []string
	inBlock := false

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if rest, ok := strings.CutPrefix(trimmed, "//!"); ok {
			inBlock = true
			rest, _ = strings.CutPrefix(rest, " ")
			docs = append(docs, rest)
			continue
		}
		if !inBlock {
			continue
		}
		if trimmed == "" {
			docs = append(docs, "")
			continue
		}
		if !strings.HasPrefix(trimmed, "//") {
			break
		}
	}

	for len(docs) > 0 && docs[len(docs)-1] == "" {
		docs = docs[:len(docs)-1]
	}
	return strings.Join(docs, "\n"), nil
}
