package rules

import "strings"

// Source is the text under review split into lines.
type Source struct {
	Text  string
	Lines []string
}

// NewSource splits text on '\n'. A trailing '\r' stays part of the line.
func NewSource(text string) *Source {
	return &Source{Text: text, Lines: strings.Split(text, "\n")}
}

// LineAt returns the 1-based line holding the byte at offset, the start of a
// pattern match in Text. Offsets outside Text yield nil.
func (s *Source) LineAt(offset int) *int {
	if offset < 0 || offset > len(s.Text) {
		return nil
	}
	n := strings.Count(s.Text[:offset], "\n") + 1
	return &n
}

// skipLine reports whether per-line checks ignore the line: blank lines and
// single-line comments.
func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "//")
}
