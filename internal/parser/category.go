package parser

import (
	"regexp"

	"github.com/sdokania30/SayDone/internal/model"
)

func compileVocab(words []string) []*regexp.Regexp {
	vocab := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		vocab[i] = wholeWordRe(w)
	}
	return vocab
}

// classify scores the clause against both vocabularies, counting distinct
// matching keywords rather than occurrences. Work wins only on a strict
// positive majority; home is the default and the tie-breaker. The clause
// text is never modified here.
func (e *Engine) classify(clause string) model.Category {
	var workScore, homeScore int
	for _, re := range e.workVocab {
		if re.MatchString(clause) {
			workScore++
		}
	}
	for _, re := range e.homeVocab {
		if re.MatchString(clause) {
			homeScore++
		}
	}

	if workScore > 0 && workScore > homeScore {
		return model.CategoryWork
	}
	return model.CategoryHome
}
