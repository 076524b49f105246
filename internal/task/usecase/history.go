package usecase

import "github.com/sdokania30/SayDone/internal/model"

// defaultHistoryLimit caps how many whole-list snapshots are retained.
const defaultHistoryLimit = 50

// history holds whole-list snapshots for undo/redo. Every mutation records
// the pre-mutation list and clears the redo stack; undo swaps the current
// list for the last snapshot and parks the current one on the redo stack.
type history struct {
	limit     int
	undoStack [][]model.Task
	redoStack [][]model.Task
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

func cloneList(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

func (h *history) record(current []model.Task) {
	h.undoStack = append(h.undoStack, cloneList(current))
	if len(h.undoStack) > h.limit {
		h.undoStack = h.undoStack[1:]
	}
	h.redoStack = nil
}

func (h *history) undo(current []model.Task) ([]model.Task, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cloneList(current))
	return last, true
}

func (h *history) redo(current []model.Task) ([]model.Task, bool) {
	if len(h.redoStack) == 0 {
		return nil, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cloneList(current))
	return last, true
}
