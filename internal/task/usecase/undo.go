package usecase

import (
	"context"

	"github.com/sdokania30/SayDone/internal/task"
)

// Undo restores the list to its state before the most recent mutation.
func (uc *implUseCase) Undo(ctx context.Context) (task.ListOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Undo: %v", err)
		return task.ListOutput{}, err
	}

	previous, ok := uc.history.undo(current)
	if !ok {
		return task.ListOutput{}, task.ErrNothingToUndo
	}

	if err := uc.repo.ReplaceAll(ctx, previous); err != nil {
		uc.l.Errorf(ctx, "Undo: restore failed: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: previous, Total: len(previous)}, nil
}

// Redo re-applies the most recently undone mutation.
func (uc *implUseCase) Redo(ctx context.Context) (task.ListOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Redo: %v", err)
		return task.ListOutput{}, err
	}

	next, ok := uc.history.redo(current)
	if !ok {
		return task.ListOutput{}, task.ErrNothingToRedo
	}

	if err := uc.repo.ReplaceAll(ctx, next); err != nil {
		uc.l.Errorf(ctx, "Redo: restore failed: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: next, Total: len(next)}, nil
}
