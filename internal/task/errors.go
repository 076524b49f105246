package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidDueDate  = errors.New("due date is not in DD-MMM form")
	ErrInvalidCategory = errors.New("category must be work or home")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
)
