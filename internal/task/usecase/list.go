package usecase

import (
	"context"

	"github.com/sdokania30/SayDone/internal/task"
)

// List returns the stored tasks, newest first.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "List: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}
