package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/taskboard/internal/ecode"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/resp"
	"github.com/ncobase/taskboard/internal/service"
	"github.com/ncobase/taskboard/internal/structs"
)

// TaskHandler handles JSON API requests for tasks.
type TaskHandler struct {
	svc    *service.TaskService
	logger *logger.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc *service.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		svc:    svc,
		logger: logger,
	}
}

func apiID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid task ID"))
		return 0, false
	}
	return id, true
}

// Create handles task creation.
// @Summary Create a new task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body structs.TaskBody true "Task fields"
// @Success 201 {object} structs.ReadTask
// @Failure 400 {object} resp.Exception
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var body structs.TaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	task, err := h.svc.CreateTask(c.Request.Context(), &body)
	if err != nil {
		h.fail(c, "failed to create task", err)
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, task)
}

// Get handles task retrieval.
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} structs.ReadTask
// @Failure 404 {object} resp.Exception
// @Router /api/tasks/{task_id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := apiID(c)
	if !ok {
		return
	}

	task, err := h.svc.GetTask(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "failed to get task", err)
		return
	}

	resp.Success(c.Writer, task)
}

// ListActive lists open tasks with days_left.
// @Summary List active tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} structs.ReadTask
// @Router /api/tasks [get]
func (h *TaskHandler) ListActive(c *gin.Context) {
	tasks, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list active tasks", err)
		return
	}
	resp.Success(c.Writer, tasks)
}

// ListCompleted lists finished tasks.
// @Summary List completed tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} structs.ReadTask
// @Router /api/tasks/completed [get]
func (h *TaskHandler) ListCompleted(c *gin.Context) {
	tasks, err := h.svc.ListCompleted(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list completed tasks", err)
		return
	}
	resp.Success(c.Writer, tasks)
}

// Update handles task updates.
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task_id path int true "Task ID"
// @Param request body structs.TaskBody true "Task fields"
// @Success 200 {object} structs.ReadTask
// @Failure 400 {object} resp.Exception
// @Failure 404 {object} resp.Exception
// @Router /api/tasks/{task_id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := apiID(c)
	if !ok {
		return
	}

	var body structs.TaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	task, err := h.svc.UpdateTask(c.Request.Context(), id, &body)
	if err != nil {
		h.fail(c, "failed to update task", err)
		return
	}

	resp.Success(c.Writer, task)
}

// Complete marks a task done.
// @Summary Complete a task
// @Tags tasks
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} map[string]bool
// @Router /api/tasks/{task_id}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := apiID(c)
	if !ok {
		return
	}

	done, err := h.svc.CompleteTask(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "failed to complete task", err)
		return
	}
	resp.Success(c.Writer, map[string]bool{"ok": done})
}

// Delete removes a task.
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param task_id path int true "Task ID"
// @Success 200 {object} map[string]bool
// @Router /api/tasks/{task_id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := apiID(c)
	if !ok {
		return
	}

	removed, err := h.svc.DeleteTask(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "failed to delete task", err)
		return
	}
	resp.Success(c.Writer, map[string]bool{"ok": removed})
}

func (h *TaskHandler) fail(c *gin.Context, msg string, err error) {
	var ve *structs.ValidationError
	switch {
	case errors.As(err, &ve):
		code := ecode.ParamErr
		if ve.Reason == structs.ReasonMalformedDate {
			code = ecode.TaskInvalidDate
		}
		resp.Fail(c.Writer, resp.InvalidParams(code, ve.Message, ve.Fields))
	case errors.Is(err, structs.ErrTaskNotFound):
		resp.Fail(c.Writer, resp.NotFound("task not found"))
	default:
		h.logger.Error(c.Request.Context(), msg, "error", err)
		resp.Fail(c.Writer, resp.InternalServer(msg))
	}
}
