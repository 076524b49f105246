package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/parser"
	"github.com/sdokania30/SayDone/internal/task"
	"github.com/sdokania30/SayDone/internal/task/repository/memory"
	"github.com/sdokania30/SayDone/internal/task/usecase"
	"github.com/sdokania30/SayDone/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	fail     bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error) {
	if m.fail {
		return gcalendar.Event{}, errors.New("calendar down")
	}
	m.requests = append(m.requests, req)
	return gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.example/ev-1"}, nil
}

// Wednesday, 1 May 2024.
var refNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func newUseCase(cal *mockCalendar) task.UseCase {
	repo := memory.New()
	engine := parser.New(parser.DefaultConfig())
	var scheduler usecase.EventScheduler
	if cal != nil {
		scheduler = cal
	}
	return usecase.New(&mockLogger{}, engine, repo, scheduler, "primary", time.UTC)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{}
	uc := newUseCase(cal)

	out, err := uc.Create(ctx, task.CreateInput{
		RawText: "i need to call mom tonight, also email the client by friday",
		Now:     &refNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.TaskCount != 2 {
		t.Fatalf("TaskCount = %d, want 2", out.TaskCount)
	}

	// Both clauses carry a due date, so both get a calendar event.
	if len(cal.requests) != 2 {
		t.Errorf("calendar events = %d, want 2", len(cal.requests))
	}
	if len(out.CalendarLinks) != 2 {
		t.Errorf("calendar links = %d, want 2", len(out.CalendarLinks))
	}

	listed, err := uc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if listed.Total != 2 {
		t.Fatalf("listed %d tasks, want 2", listed.Total)
	}
}

func TestCreateDegenerateInput(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(nil)

	out, err := uc.Create(ctx, task.CreateInput{RawText: "   ", Now: &refNow})
	if err != nil {
		t.Fatalf("degenerate input must not error, got %v", err)
	}
	if out.TaskCount != 0 {
		t.Errorf("TaskCount = %d, want 0", out.TaskCount)
	}
}

func TestCreateCalendarFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{fail: true}
	uc := newUseCase(cal)

	out, err := uc.Create(ctx, task.CreateInput{RawText: "call mom tonight", Now: &refNow})
	if err != nil {
		t.Fatalf("calendar failure must not fail the create: %v", err)
	}
	if out.TaskCount != 1 {
		t.Fatalf("TaskCount = %d, want 1", out.TaskCount)
	}
	if len(out.CalendarLinks) != 0 {
		t.Errorf("expected no calendar links, got %v", out.CalendarLinks)
	}
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(nil)

	out, _ := uc.Create(ctx, task.CreateInput{RawText: "buy groceries", Now: &refNow})
	id := out.Tasks[0].ID

	toggled, err := uc.Toggle(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Task.Completed {
		t.Error("task not marked completed")
	}

	toggled, err = uc.Toggle(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Task.Completed {
		t.Error("second toggle did not clear completion")
	}

	if _, err := uc.Toggle(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(nil)

	out, _ := uc.Create(ctx, task.CreateInput{RawText: "buy groceries", Now: &refNow})
	id := out.Tasks[0].ID

	desc := "Buy vegetables"
	due := "15-Jan"
	cat := "work"
	prio := "high"
	updated, err := uc.Update(ctx, task.UpdateInput{
		ID:          id,
		Description: &desc,
		DueDate:     &due,
		Category:    &cat,
		Priority:    &prio,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Task.Description != desc {
		t.Errorf("description = %q, want %q", updated.Task.Description, desc)
	}
	if updated.Task.Category != model.CategoryWork || updated.Task.Priority != model.PriorityHigh {
		t.Errorf("category/priority not applied: %+v", updated.Task)
	}
	if updated.Task.DueDate == nil || updated.Task.DueDate.Day() != 15 || updated.Task.DueDate.Month() != time.January {
		t.Errorf("due date not applied: %v", updated.Task.DueDate)
	}
	if updated.Task.DueDate.Location() != time.UTC {
		t.Errorf("due date zone = %v, want the configured zone", updated.Task.DueDate.Location())
	}

	// Clearing the due date through the wire sentinel.
	unset := "Not specified"
	updated, err = uc.Update(ctx, task.UpdateInput{ID: id, DueDate: &unset})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Task.DueDate != nil {
		t.Errorf("due date not cleared: %v", updated.Task.DueDate)
	}
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(nil)

	out, _ := uc.Create(ctx, task.CreateInput{RawText: "buy groceries", Now: &refNow})
	id := out.Tasks[0].ID

	bad := "someday"
	if _, err := uc.Update(ctx, task.UpdateInput{ID: id, DueDate: &bad}); !errors.Is(err, task.ErrInvalidDueDate) {
		t.Errorf("err = %v, want ErrInvalidDueDate", err)
	}

	badCat := "garage"
	if _, err := uc.Update(ctx, task.UpdateInput{ID: id, Category: &badCat}); !errors.Is(err, task.ErrInvalidCategory) {
		t.Errorf("err = %v, want ErrInvalidCategory", err)
	}

	badPrio := "extreme"
	if _, err := uc.Update(ctx, task.UpdateInput{ID: id, Priority: &badPrio}); !errors.Is(err, task.ErrInvalidPriority) {
		t.Errorf("err = %v, want ErrInvalidPriority", err)
	}
}

func TestUndoRedo(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(nil)

	if _, err := uc.Undo(ctx); !errors.Is(err, task.ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}

	_, _ = uc.Create(ctx, task.CreateInput{RawText: "buy groceries", Now: &refNow})
	out, _ := uc.Create(ctx, task.CreateInput{RawText: "email the boss", Now: &refNow})
	if out.TaskCount != 1 {
		t.Fatalf("setup failed: %+v", out)
	}

	undone, err := uc.Undo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if undone.Total != 1 {
		t.Fatalf("after undo, %d tasks, want 1", undone.Total)
	}

	redone, err := uc.Redo(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if redone.Total != 2 {
		t.Fatalf("after redo, %d tasks, want 2", redone.Total)
	}

	if _, err := uc.Redo(ctx); !errors.Is(err, task.ErrNothingToRedo) {
		t.Errorf("err = %v, want ErrNothingToRedo", err)
	}

	// A fresh mutation clears the redo stack.
	if _, err := uc.Undo(ctx); err != nil {
		t.Fatal(err)
	}
	_, _ = uc.Create(ctx, task.CreateInput{RawText: "walk the dog", Now: &refNow})
	if _, err := uc.Redo(ctx); !errors.Is(err, task.ErrNothingToRedo) {
		t.Errorf("redo after new mutation: err = %v, want ErrNothingToRedo", err)
	}
}
