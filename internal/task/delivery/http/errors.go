package http

import (
	"errors"
	"net/http"

	"github.com/sdokania30/SayDone/internal/task"
	pkgErrors "github.com/sdokania30/SayDone/pkg/errors"
)

var (
	errEmptyText = errors.New("text must not be empty")
	errBadNow    = errors.New("now must be RFC 3339")
	errNoFields  = errors.New("at least one field must be set")
	errMissingID = errors.New("id is required")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "due date must be DD-MMM or \"Not specified\"")
	case errors.Is(err, task.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "category must be work or home")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "priority must be low, medium or high")
	case errors.Is(err, task.ErrNothingToUndo):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing to undo")
	case errors.Is(err, task.ErrNothingToRedo):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing to redo")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
