package repository

import (
	"context"
	"errors"

	"github.com/sdokania30/SayDone/internal/model"
)

// ErrNotFound is returned when no task matches the given ID.
var ErrNotFound = errors.New("task not found")

// Repository is the interface for task list storage. Implementations keep
// tasks in newest-first order: InsertTasks prepends.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	InsertTasks(ctx context.Context, tasks []model.Task) error
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// ReplaceAll swaps the entire list, used for undo/redo snapshot
	// restoration.
	ReplaceAll(ctx context.Context, tasks []model.Task) error
}
