package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sdokania30/SayDone/pkg/response"
)

// Parse godoc
// @Summary     Parse an utterance into tasks
// @Description Extracts one task record per clause from free-form text and stores them.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns all stored tasks, newest first.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial edit. due_date accepts DD-MMM (e.g. 15-Jan) or "Not specified" to clear.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskEnvelopeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag of one task.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEnvelopeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Undo godoc
// @Summary     Undo the last mutation
// @Description Restores the task list to its state before the most recent change.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     409 {object} response.Resp "Nothing to undo"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/undo [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Undo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Undo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Redo godoc
// @Summary     Redo the last undone mutation
// @Description Reapplies the most recently undone change to the task list.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     409 {object} response.Resp "Nothing to redo"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/redo [POST]
func (h *handler) Redo(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Redo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Redo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
