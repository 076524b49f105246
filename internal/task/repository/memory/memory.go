// Package memory is the in-process task store. The whole list lives in a
// single slice guarded by one mutex; every read hands out copies so callers
// can never alias internal state.
package memory

import (
	"context"
	"sync"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/task/repository"
)

type store struct {
	mu    sync.RWMutex
	tasks []model.Task
}

// New creates an empty in-memory task repository.
func New() *store {
	return &store{}
}

func (s *store) ListTasks(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *store) GetTask(ctx context.Context, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

// InsertTasks prepends the batch so the list stays newest-first, keeping
// the batch's own internal order.
func (s *store) InsertTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Task, 0, len(tasks)+len(s.tasks))
	next = append(next, tasks...)
	next = append(next, s.tasks...)
	s.tasks = next
	return nil
}

func (s *store) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		if opt.Description != nil {
			s.tasks[i].Description = *opt.Description
		}
		if opt.SetDueDate {
			s.tasks[i].DueDate = opt.DueDate
		}
		if opt.Category != nil {
			s.tasks[i].Category = *opt.Category
		}
		if opt.Priority != nil {
			s.tasks[i].Priority = *opt.Priority
		}
		if opt.Completed != nil {
			s.tasks[i].Completed = *opt.Completed
		}
		return s.tasks[i], nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (s *store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *store) ReplaceAll(ctx context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Task, len(tasks))
	copy(next, tasks)
	s.tasks = next
	return nil
}
