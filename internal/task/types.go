package task

import (
	"time"

	"github.com/sdokania30/SayDone/internal/model"
)

// CreateInput is the input for parsing an utterance into stored tasks.
// Now is optional; when nil the wall clock is used. Supplying it pins the
// extraction to a fixed reference instant, which is what tests do.
type CreateInput struct {
	RawText string
	Now     *time.Time
}

// CreateOutput reports the tasks created from one utterance, in clause
// order. CalendarLinks holds the event link per created task, empty when
// no event was scheduled.
type CreateOutput struct {
	Tasks         []model.Task
	TaskCount     int
	CalendarLinks map[string]string
}

// ListOutput is the current task list, newest first.
type ListOutput struct {
	Tasks []model.Task
	Total int
}

// UpdateInput carries a partial edit of a stored task. Nil fields are left
// untouched. DueDate accepts the DD-MMM wire form or "Not specified" to
// clear the date.
type UpdateInput struct {
	ID          string
	Description *string
	DueDate     *string
	Category    *string
	Priority    *string
}

// UpdateOutput is the task after an edit.
type UpdateOutput struct {
	Task model.Task
}

// ToggleOutput is the task after flipping its completion state.
type ToggleOutput struct {
	Task model.Task
}
