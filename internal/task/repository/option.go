package repository

import (
	"time"

	"github.com/sdokania30/SayDone/internal/model"
)

// UpdateTaskOptions is a partial update: nil fields are left untouched.
// SetDueDate distinguishes "clear the due date" (true, DueDate nil) from
// "leave it alone" (false).
type UpdateTaskOptions struct {
	Description *string
	SetDueDate  bool
	DueDate     *time.Time
	Category    *model.Category
	Priority    *model.Priority
	Completed   *bool
}
