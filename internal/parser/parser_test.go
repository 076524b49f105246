package parser_test

import (
	"testing"
	"time"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/parser"
)

// Wednesday, 1 May 2024.
var refNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func mustDate(t *testing.T, task model.Task) time.Time {
	t.Helper()
	if task.DueDate == nil {
		t.Fatalf("task %q has no due date", task.Description)
	}
	return *task.DueDate
}

func TestParseTasksEndToEnd(t *testing.T) {
	e := parser.New(parser.DefaultConfig())

	tasks := e.ParseTasks("i need to call mom tonight, also email the client by friday", refNow)
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	first := tasks[0]
	if first.Description != "Call mother" {
		t.Errorf("first description = %q, want %q", first.Description, "Call mother")
	}
	if first.Category != model.CategoryHome {
		t.Errorf("first category = %v, want home", first.Category)
	}
	if first.Priority != model.PriorityHigh {
		t.Errorf("first priority = %v, want high", first.Priority)
	}
	if got := mustDate(t, first); !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first due date = %v, want the reference Wednesday", got)
	}

	second := tasks[1]
	if second.Description != "Email client" {
		t.Errorf("second description = %q, want %q", second.Description, "Email client")
	}
	if second.Category != model.CategoryWork {
		t.Errorf("second category = %v, want work", second.Category)
	}
	if second.Priority != model.PriorityMedium {
		t.Errorf("second priority = %v, want medium", second.Priority)
	}
	if got := mustDate(t, second); !got.Equal(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second due date = %v, want the coming Friday", got)
	}
}

func TestParseTasksDateOnlyClause(t *testing.T) {
	e := parser.New(parser.DefaultConfig())

	// A clause that is nothing but a date phrase keeps the phrase as its
	// description instead of shipping an empty one.
	tasks := e.ParseTasks("remind me to friday", refNow)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Description != "Friday" {
		t.Errorf("description = %q, want %q", tasks[0].Description, "Friday")
	}
	if got := mustDate(t, tasks[0]); !got.Equal(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("due date = %v, want the coming Friday", got)
	}

	// Same for priority-only clauses.
	tasks = e.ParseTasks("urgent!", refNow)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Description != "Urgent" {
		t.Errorf("description = %q, want %q", tasks[0].Description, "Urgent")
	}
	if tasks[0].Priority != model.PriorityHigh {
		t.Errorf("priority = %v, want high", tasks[0].Priority)
	}
}

func TestParseTasksUrgentNoDate(t *testing.T) {
	e := parser.New(parser.DefaultConfig())

	tasks := e.ParseTasks("urgent: fix production bug asap", refNow)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	task := tasks[0]
	if task.Category != model.CategoryWork {
		t.Errorf("category = %v, want work", task.Category)
	}
	if task.Priority != model.PriorityHigh {
		t.Errorf("priority = %v, want high", task.Priority)
	}
	if task.DueDate != nil {
		t.Errorf("due date = %v, want unspecified", task.DueDate)
	}
}

func TestParseTasksDegenerateInput(t *testing.T) {
	e := parser.New(parser.DefaultConfig())

	for _, input := range []string{"", "   ", "a", "ok"} {
		if tasks := e.ParseTasks(input, refNow); len(tasks) != 0 {
			t.Errorf("ParseTasks(%q) = %d tasks, want 0", input, len(tasks))
		}
	}
}

func TestParseTasksClauseOrderPreserved(t *testing.T) {
	e := parser.New(parser.DefaultConfig())

	tasks := e.ParseTasks("call mom and email boss, then book flight", refNow)
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}

	want := []string{"Call mother", "Email boss", "Book flight"}
	for i, w := range want {
		if tasks[i].Description != w {
			t.Errorf("task[%d] = %q, want %q", i, tasks[i].Description, w)
		}
	}
}

func TestParseTasksRecordInvariants(t *testing.T) {
	e := parser.New(parser.DefaultConfig())

	inputs := []string{
		"i need to call mom tonight, also email the client by friday",
		"urgent: fix production bug asap",
		"buy groceries this weekend and pay rent sometime this month",
		"plan vacation whenever, dentist appointment jan 15",
		"finish report by eod. review budget next week",
		"remind me to friday",
		"i need to tomorrow, also next week",
	}

	seen := map[string]bool{}
	for _, input := range inputs {
		for _, task := range e.ParseTasks(input, refNow) {
			if task.Description == "" {
				t.Errorf("empty description for input %q", input)
			}
			if task.Category != model.CategoryWork && task.Category != model.CategoryHome {
				t.Errorf("invalid category %q", task.Category)
			}
			switch task.Priority {
			case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
			default:
				t.Errorf("invalid priority %q", task.Priority)
			}
			if task.Completed {
				t.Error("task must not be completed at creation")
			}
			if task.ID == "" || seen[task.ID] {
				t.Errorf("missing or duplicate task ID %q", task.ID)
			}
			seen[task.ID] = true
		}
	}
}

func TestParseTasksDeterministicFields(t *testing.T) {
	e := parser.New(parser.DefaultConfig())
	input := "important submit the proposal in next 3 days, walk the dog tomorrow"

	a := e.ParseTasks(input, refNow)
	b := e.ParseTasks(input, refNow)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}

	for i := range a {
		if a[i].Description != b[i].Description ||
			a[i].Category != b[i].Category ||
			a[i].Priority != b[i].Priority {
			t.Errorf("task %d differs between runs", i)
		}
		aDue, bDue := a[i].DueDate, b[i].DueDate
		if (aDue == nil) != (bDue == nil) || (aDue != nil && !aDue.Equal(*bDue)) {
			t.Errorf("task %d due dates differ between runs", i)
		}
	}
}
