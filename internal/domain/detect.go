package domain

import (
	"errors"
	"regexp"
)

// ErrNotCode is returned by hosts that refuse text which does not look like source code.
var ErrNotCode = errors.New("input does not look like source code")

// CodeDetector decides whether raw text is worth sending to the reviewer.
type CodeDetector func(text string) bool

var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(function|if|for|while|return|const|let|var)\b`),
	regexp.MustCompile(`=>|\(\)|\{|\}|;|=`),
}

// LooksLikeCode is the default CodeDetector: a keyword or a punctuation
// pattern typical of C-family code must appear somewhere in text.
func LooksLikeCode(text string) bool {
	for _, p := range codePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
