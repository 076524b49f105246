package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// wholeWordRe compiles a case-insensitive, word-boundary anchored matcher
// for a keyword or phrase, so "eod" never matches inside "geodesic".
func wholeWordRe(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// anyWordRe compiles a single alternation matcher over a keyword list.
func anyWordRe(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// collapseWhitespace folds runs of whitespace into single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// stripFirst removes the first match of re from s, leaving a space in its
// place so neighbouring words do not fuse.
func stripFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + " " + s[loc[1]:]
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
