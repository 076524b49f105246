package parser

import (
	"regexp"

	"github.com/sdokania30/SayDone/internal/model"
)

// priorityRule is one entry in the ordered urgency table. List order, not
// textual position, decides which keyword wins when several are present.
type priorityRule struct {
	re   *regexp.Regexp
	tier model.Priority

	// keep leaves the matched text in place. Set for deadline cues like
	// "tonight": they signal urgency but the date resolver still needs to
	// consume them afterwards.
	keep bool
}

func compilePriorityRules(cfg Config) []priorityRule {
	rules := make([]priorityRule, 0,
		len(cfg.UrgentKeywords)+len(cfg.HighKeywords)+len(cfg.DeadlineCues)+len(cfg.LowKeywords))

	for _, kw := range cfg.UrgentKeywords {
		rules = append(rules, priorityRule{re: wholeWordRe(kw), tier: model.PriorityHigh})
	}
	for _, kw := range cfg.HighKeywords {
		rules = append(rules, priorityRule{re: wholeWordRe(kw), tier: model.PriorityHigh})
	}
	for _, kw := range cfg.DeadlineCues {
		rules = append(rules, priorityRule{re: wholeWordRe(kw), tier: model.PriorityHigh, keep: true})
	}
	for _, kw := range cfg.LowKeywords {
		rules = append(rules, priorityRule{re: wholeWordRe(kw), tier: model.PriorityLow})
	}

	return rules
}

// extractPriority scans the clause against the ordered tier table,
// first match wins. At most one keyword is stripped; any further urgency
// words stay in the text for later stages or the final description.
func (e *Engine) extractPriority(clause string) (model.Priority, string) {
	for _, rule := range e.priorityRules {
		if !rule.re.MatchString(clause) {
			continue
		}
		if rule.keep {
			return rule.tier, clause
		}
		return rule.tier, collapseWhitespace(stripFirst(rule.re, clause))
	}
	return model.PriorityMedium, clause
}
