package http

import (
	"strings"
	"time"

	"github.com/sdokania30/SayDone/internal/model"
	"github.com/sdokania30/SayDone/internal/task"
	"github.com/sdokania30/SayDone/pkg/datemath"
	"github.com/sdokania30/SayDone/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`

	// Now pins the reference instant for date resolution, RFC 3339.
	// Empty means the server clock.
	Now string `json:"now" binding:"omitempty"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	if r.Now != "" {
		if _, err := time.Parse(time.RFC3339, r.Now); err != nil {
			return errBadNow
		}
	}
	return nil
}

func (r parseReq) toInput() task.CreateInput {
	input := task.CreateInput{RawText: r.Text}
	if r.Now != "" {
		now, _ := time.Parse(time.RFC3339, r.Now)
		input.Now = &now
	}
	return input
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	DueDate     *string `json:"due_date"    binding:"omitempty"`
	Category    *string `json:"category"    binding:"omitempty,oneof=work home"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=low medium high"`
}

func (r updateReq) validate() error {
	if r.Description == nil && r.DueDate == nil && r.Category == nil && r.Priority == nil {
		return errNoFields
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		DueDate:     r.DueDate,
		Category:    r.Category,
		Priority:    r.Priority,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	DueDate     string            `json:"due_date"`
	Category    string            `json:"category"`
	Priority    string            `json:"priority"`
	Completed   bool              `json:"completed"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Description: t.Description,
		DueDate:     datemath.FormatDayMonth(t.DueDate),
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	resps := make([]taskResp, len(tasks))
	for i, t := range tasks {
		resps[i] = newTaskResp(t)
	}
	return resps
}

type parseResp struct {
	Tasks         []taskResp        `json:"tasks"`
	TaskCount     int               `json:"task_count"`
	CalendarLinks map[string]string `json:"calendar_links,omitempty"`
}

func (h *handler) newParseResp(out task.CreateOutput) parseResp {
	return parseResp{
		Tasks:         newTaskResps(out.Tasks),
		TaskCount:     out.TaskCount,
		CalendarLinks: out.CalendarLinks,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks),
		Total: out.Total,
	}
}

type taskEnvelopeResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) taskEnvelopeResp {
	return taskEnvelopeResp{Task: newTaskResp(out.Task)}
}

func (h *handler) newToggleResp(out task.ToggleOutput) taskEnvelopeResp {
	return taskEnvelopeResp{Task: newTaskResp(out.Task)}
}
