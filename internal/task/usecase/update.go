package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/task"
	"github.com/sdokania30/SayDone/internal/task/repository"
	"github.com/sdokania30/SayDone/pkg/datemath"
)

// Toggle flips the completion state of one task.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (task.ToggleOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.ToggleOutput{}, uc.mapRepoErr(ctx, "Toggle", err)
	}

	if err := uc.snapshot(ctx); err != nil {
		return task.ToggleOutput{}, err
	}

	flipped := !current.Completed
	updated, err := uc.repo.UpdateTask(ctx, id, repository.UpdateTaskOptions{Completed: &flipped})
	if err != nil {
		return task.ToggleOutput{}, uc.mapRepoErr(ctx, "Toggle", err)
	}
	return task.ToggleOutput{Task: updated}, nil
}

// Update applies a partial edit to one task. The due date, when present,
// must be the DD-MMM wire form or "Not specified" to clear it; the year is
// assumed current.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	opt, err := uc.buildUpdateOptions(input)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.repo.GetTask(ctx, input.ID); err != nil {
		return task.UpdateOutput{}, uc.mapRepoErr(ctx, "Update", err)
	}

	if err := uc.snapshot(ctx); err != nil {
		return task.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, input.ID, opt)
	if err != nil {
		return task.UpdateOutput{}, uc.mapRepoErr(ctx, "Update", err)
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.repo.GetTask(ctx, id); err != nil {
		return uc.mapRepoErr(ctx, "Delete", err)
	}

	if err := uc.snapshot(ctx); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return uc.mapRepoErr(ctx, "Delete", err)
	}
	return nil
}

func (uc *implUseCase) buildUpdateOptions(input task.UpdateInput) (repository.UpdateTaskOptions, error) {
	var opt repository.UpdateTaskOptions

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		opt.Description = &desc
	}

	if input.Category != nil {
		switch model.Category(strings.ToLower(*input.Category)) {
		case model.CategoryWork:
			c := model.CategoryWork
			opt.Category = &c
		case model.CategoryHome:
			c := model.CategoryHome
			opt.Category = &c
		default:
			return opt, task.ErrInvalidCategory
		}
	}

	if input.Priority != nil {
		switch model.Priority(strings.ToLower(*input.Priority)) {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
			p := model.Priority(strings.ToLower(*input.Priority))
			opt.Priority = &p
		default:
			return opt, task.ErrInvalidPriority
		}
	}

	if input.DueDate != nil {
		opt.SetDueDate = true
		raw := strings.TrimSpace(*input.DueDate)
		if !strings.EqualFold(raw, datemath.NotSpecified) && raw != "" {
			due, err := datemath.ParseDayMonth(raw, uc.now().Year(), uc.loc)
			if err != nil {
				return opt, task.ErrInvalidDueDate
			}
			opt.DueDate = &due
		}
	}

	return opt, nil
}

func (uc *implUseCase) mapRepoErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	uc.l.Errorf(ctx, "%s: %v", op, err)
	return err
}
