// Package parser turns a free-form utterance into structured task records.
//
// The pipeline is a fixed chain: normalize → segment → per clause
// (priority → category → date → clean). Every stage is a pure function of
// its input plus the injected reference instant, so output is reproducible
// for a fixed "now".
package parser

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/sdokania30/SayDone/internal/model"
)

// Engine is the compiled extraction pipeline. Safe for concurrent use:
// all state is immutable after New.
type Engine struct {
	expansions    []expansion
	fillers       []*regexp.Regexp
	boundaryRe    *regexp.Regexp
	priorityRules []priorityRule
	workVocab     []*regexp.Regexp
	homeVocab     []*regexp.Regexp
	dateRules     []dateRule
	stopWordRe    *regexp.Regexp
	timeNounRe    *regexp.Regexp
}

// New compiles cfg into an Engine.
func New(cfg Config) *Engine {
	e := &Engine{
		boundaryRe:    compileSegmenter(cfg),
		priorityRules: compilePriorityRules(cfg),
		workVocab:     compileVocab(cfg.WorkKeywords),
		homeVocab:     compileVocab(cfg.HomeKeywords),
		dateRules:     compileDateRules(),
		stopWordRe:    anyWordRe(cfg.StopWords),
		timeNounRe:    anyWordRe(cfg.TimeNouns),
	}
	e.expansions, e.fillers = compileNormalizer(cfg)
	return e
}

// ParseTasks extracts zero or more task records from a raw utterance.
// Record order follows clause order in the input. Degenerate input
// (empty, whitespace, a single short word) yields an empty slice, never
// an error: the pipeline always produces some output.
func (e *Engine) ParseTasks(raw string, now time.Time) []model.Task {
	normalized := e.normalize(raw)
	clauses := e.segment(normalized)

	tasks := make([]model.Task, 0, len(clauses))
	for _, clause := range clauses {
		priority, rest := e.extractPriority(clause)
		category := e.classify(rest)
		due, stripped := e.resolveDate(rest, now)

		// A clause can be nothing but a date or priority phrase. Fall back
		// to the text before each strip so no record ships without a
		// description; a clause with no usable text at all is dropped.
		desc := e.clean(stripped)
		if desc == "" {
			desc = e.clean(rest)
		}
		if desc == "" {
			desc = e.clean(clause)
		}
		if desc == "" {
			continue
		}

		tasks = append(tasks, model.Task{
			ID:          uuid.NewString(),
			Description: desc,
			DueDate:     due,
			Category:    category,
			Priority:    priority,
			Completed:   false,
			CreatedAt:   now,
		})
	}
	return tasks
}
