package parser

import (
	"regexp"
	"strings"
)

// Punctuation trimmed from clause edges after cleaning.
const edgePunctuation = " \t.,;:!?-–—'\""

var durationRe = regexp.MustCompile(`(?i)\b(?:for )?\d+\s*(?:minutes?|mins?|hours?|hrs?)\b`)

// clean produces the final description: leftover stop-words and
// time-of-day nouns go, whitespace collapses, edge punctuation is trimmed,
// and the first letter is capitalized. When that erases too much, the
// pre-clean text is used instead. Returns "" when even the pre-clean text
// holds nothing but whitespace and punctuation; the caller decides the
// last-resort description.
func (e *Engine) clean(clause string) string {
	cleaned := e.stopWordRe.ReplaceAllString(clause, " ")
	cleaned = e.timeNounRe.ReplaceAllString(cleaned, " ")
	cleaned = durationRe.ReplaceAllString(cleaned, " ")
	cleaned = collapseWhitespace(cleaned)
	cleaned = strings.Trim(cleaned, edgePunctuation)

	if len(cleaned) < minClauseLength {
		cleaned = strings.Trim(collapseWhitespace(clause), edgePunctuation)
	}
	return capitalize(cleaned)
}
