package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses raw text into task records, stores them newest-first,
	// and optionally schedules calendar events for dated tasks.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns the stored tasks, newest first.
	List(ctx context.Context) (ListOutput, error)

	// Toggle flips the completion state of one task.
	Toggle(ctx context.Context, id string) (ToggleOutput, error)

	// Update applies a partial edit to one task.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes one task.
	Delete(ctx context.Context, id string) error

	// Undo and Redo move through whole-list snapshots taken before each
	// mutation.
	Undo(ctx context.Context) (ListOutput, error)
	Redo(ctx context.Context) (ListOutput, error)
}
