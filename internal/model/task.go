package model

import "time"

// Category is the closed set of task categories.
type Category string

const (
	CategoryWork Category = "work"
	CategoryHome Category = "home"
)

// Priority is the closed set of urgency tiers, ordered low < medium < high.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single extracted task record. DueDate is nil when no temporal
// reference could be resolved from the input. The parser constructs tasks
// and never touches them again; the store owns all later mutation.
type Task struct {
	ID          string
	Description string
	DueDate     *time.Time
	Category    Category
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
}
