package parser

import (
	"testing"

	"github.com/sdokania30/SayDone/internal/model"
)

func TestExtractPriority(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		name       string
		clause     string
		wantTier   model.Priority
		wantClause string
	}{
		{
			name:       "No keyword defaults to medium",
			clause:     "email the client",
			wantTier:   model.PriorityMedium,
			wantClause: "email the client",
		},
		{
			name:       "Urgent keyword stripped",
			clause:     "urgent: fix production bug asap",
			wantTier:   model.PriorityHigh,
			wantClause: ": fix production bug asap",
		},
		{
			name:       "High keyword stripped",
			clause:     "important review the proposal",
			wantTier:   model.PriorityHigh,
			wantClause: "review the proposal",
		},
		{
			name:       "Low keyword stripped",
			clause:     "organize photos whenever",
			wantTier:   model.PriorityLow,
			wantClause: "organize photos",
		},
		{
			name:       "Multi-word low keyword",
			clause:     "no rush on the laundry",
			wantTier:   model.PriorityLow,
			wantClause: "on the laundry",
		},
		{
			name:       "List order beats textual position",
			clause:     "someday deal with the urgent backlog",
			wantTier:   model.PriorityHigh,
			wantClause: "someday deal with the backlog",
		},
		{
			name:       "Only the first matching keyword is stripped",
			clause:     "urgent urgent call the doctor",
			wantTier:   model.PriorityHigh,
			wantClause: "urgent call the doctor",
		},
		{
			name:       "Deadline cue raises tier but stays in text",
			clause:     "call mother tonight",
			wantTier:   model.PriorityHigh,
			wantClause: "call mother tonight",
		},
		{
			name:       "Eod cue kept for the date resolver",
			clause:     "finish report by eod",
			wantTier:   model.PriorityHigh,
			wantClause: "finish report by eod",
		},
		{
			name:       "Keyword inside a longer word ignored",
			clause:     "study geodesic domes",
			wantTier:   model.PriorityMedium,
			wantClause: "study geodesic domes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, rest := e.extractPriority(tt.clause)
			if tier != tt.wantTier {
				t.Errorf("tier = %v, want %v", tier, tt.wantTier)
			}
			if rest != tt.wantClause {
				t.Errorf("clause = %q, want %q", rest, tt.wantClause)
			}
		})
	}
}
