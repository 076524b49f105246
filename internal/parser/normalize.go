package parser

import (
	"regexp"
	"sort"
)

type expansion struct {
	re        *regexp.Regexp
	expansion string
}

// compileNormalizer precompiles the shorthand and filler matchers. Shorthand
// keys are sorted so replacement order is stable across runs; expansion runs
// before filler removal, which the contract requires for reproducibility.
func compileNormalizer(cfg Config) ([]expansion, []*regexp.Regexp) {
	keys := make([]string, 0, len(cfg.Shorthands))
	for k := range cfg.Shorthands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expansions := make([]expansion, 0, len(keys))
	for _, k := range keys {
		expansions = append(expansions, expansion{
			re:        wholeWordRe(k),
			expansion: cfg.Shorthands[k],
		})
	}

	fillers := make([]*regexp.Regexp, 0, len(cfg.Fillers))
	for _, phrase := range cfg.Fillers {
		fillers = append(fillers, wholeWordRe(phrase))
	}

	return expansions, fillers
}

// normalize expands shorthand, deletes filler phrases, and collapses
// whitespace. Empty input stays empty; the segmenter turns that into zero
// clauses.
func (e *Engine) normalize(raw string) string {
	text := raw
	for _, sh := range e.expansions {
		text = sh.re.ReplaceAllString(text, sh.expansion)
	}
	for _, filler := range e.fillers {
		text = filler.ReplaceAllString(text, " ")
	}
	return collapseWhitespace(text)
}
