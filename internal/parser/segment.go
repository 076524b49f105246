package parser

import (
	"regexp"
	"strings"
)

// clauseSeparator is the internal marker boundary patterns collapse into.
const clauseSeparator = "\x1f"

// minClauseLength: shorter pieces cannot describe a task and are dropped.
const minClauseLength = 3

var punctBoundaryRe = regexp.MustCompile(`\.\s+|,\s+|\n+`)

func compileSegmenter(cfg Config) *regexp.Regexp {
	words := make([]string, len(cfg.BoundaryWords))
	for i, w := range cfg.BoundaryWords {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\s+(?:` + strings.Join(words, "|") + `)\s+`)
}

// segment splits normalized text into clauses. Boundary words are replaced
// first so ", then " collapses into a single split point rather than an
// empty clause.
func (e *Engine) segment(text string) []string {
	if text == "" {
		return nil
	}

	marked := e.boundaryRe.ReplaceAllString(text, clauseSeparator)
	marked = punctBoundaryRe.ReplaceAllString(marked, clauseSeparator)

	pieces := strings.Split(marked, clauseSeparator)
	clauses := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if len(piece) < minClauseLength {
			continue
		}
		clauses = append(clauses, piece)
	}
	return clauses
}
