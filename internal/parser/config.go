package parser

// Config carries the static vocabularies the pipeline matches against.
// It is loaded once, compiled by New, and never mutated afterwards.
type Config struct {
	// Shorthands maps spoken/typed shorthand to its expansion, applied
	// whole-word before filler removal.
	Shorthands map[string]string

	// Fillers are phrases deleted outright during normalization.
	Fillers []string

	// BoundaryWords split an utterance into clauses when surrounded by
	// whitespace.
	BoundaryWords []string

	// Priority tiers, tested in order: Urgent, High, DeadlineCues, Low.
	// DeadlineCues raise priority to high but are left in the clause so
	// the date resolver can still consume them.
	UrgentKeywords []string
	HighKeywords   []string
	DeadlineCues   []string
	LowKeywords    []string

	// Category vocabularies. Multi-word entries are phrase-matched with
	// word boundaries on both ends.
	WorkKeywords []string
	HomeKeywords []string

	// Final-clean vocabularies.
	StopWords []string
	TimeNouns []string
}

// DefaultConfig returns the built-in vocabularies.
func DefaultConfig() Config {
	return Config{
		Shorthands: map[string]string{
			"mom":    "mother",
			"dad":    "father",
			"tmw":    "tomorrow",
			"tmrw":   "tomorrow",
			"2day":   "today",
			"tonite": "tonight",
			"appt":   "appointment",
			"mtg":    "meeting",
		},
		Fillers: []string{
			"i need to",
			"i have to",
			"i want to",
			"i should",
			"remind me to",
			"don't forget to",
			"dont forget to",
			"make sure to",
			"can you",
			"please",
		},
		BoundaryWords: []string{"and", "also", "then"},
		UrgentKeywords: []string{
			"urgent",
			"asap",
			"emergency",
			"immediately",
			"critical",
			"right away",
			"right now",
		},
		HighKeywords: []string{
			"important",
			"high priority",
			"must",
			"crucial",
		},
		DeadlineCues: []string{
			"today",
			"tonight",
			"eod",
		},
		LowKeywords: []string{
			"whenever",
			"no rush",
			"no hurry",
			"low priority",
			"someday",
			"eventually",
			"sometime",
			"later",
		},
		WorkKeywords: []string{
			"meeting",
			"client meeting",
			"email",
			"boss",
			"client",
			"report",
			"project",
			"presentation",
			"deadline",
			"office",
			"interview",
			"review",
			"standup",
			"invoice",
			"proposal",
			"budget",
			"production",
			"bug",
			"deploy",
			"launch",
		},
		HomeKeywords: []string{
			"mother",
			"father",
			"family",
			"grocery",
			"groceries",
			"shopping",
			"doctor",
			"dentist",
			"appointment",
			"gym",
			"laundry",
			"dinner",
			"cook",
			"clean",
			"birthday",
			"kids",
			"school",
			"home",
			"house",
			"friend",
		},
		StopWords: []string{
			"by", "on", "at", "in", "for", "the", "a", "an", "to", "of", "and", "or",
		},
		TimeNouns: []string{
			"morning", "afternoon", "evening", "night",
			"today", "tonight", "tomorrow",
			"this", "next", "weekend",
		},
	}
}
