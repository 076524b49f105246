package usecase

import (
	"context"
	"strings"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/task"
	"github.com/sdokania30/SayDone/pkg/datemath"
	"github.com/sdokania30/SayDone/pkg/gcalendar"
)

// Create parses raw text into task records and stores them newest-first.
// Degenerate input is not an error: it simply produces an empty output.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	now := uc.now()
	if input.Now != nil {
		now = *input.Now
	}

	uc.l.Infof(ctx, "Create: input_length=%d", len(input.RawText))

	parsed := uc.engine.ParseTasks(input.RawText, now)
	if len(parsed) == 0 {
		uc.l.Infof(ctx, "Create: no tasks extracted from %q", strings.TrimSpace(input.RawText))
		return task.CreateOutput{}, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.snapshot(ctx); err != nil {
		uc.l.Errorf(ctx, "Create: snapshot failed: %v", err)
		return task.CreateOutput{}, err
	}

	if err := uc.repo.InsertTasks(ctx, parsed); err != nil {
		uc.l.Errorf(ctx, "Create: insert failed: %v", err)
		return task.CreateOutput{}, err
	}

	links := make(map[string]string)
	for _, t := range parsed {
		if link := uc.tryCreateCalendarEvent(ctx, t); link != "" {
			links[t.ID] = link
		}
	}

	uc.l.Infof(ctx, "Create: stored %d tasks", len(parsed))
	return task.CreateOutput{
		Tasks:         parsed,
		TaskCount:     len(parsed),
		CalendarLinks: links,
	}, nil
}

// tryCreateCalendarEvent schedules an all-day event for a dated task.
// Returns the event HTML link, or empty string on failure (graceful
// degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Description,
		Description: "Due " + datemath.FormatDayMonth(t.DueDate),
		Date:        *t.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar event failed for %q (non-fatal): %v", t.Description, err)
		return ""
	}
	return event.HtmlLink
}
