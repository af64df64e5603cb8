package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/service"
	"github.com/ncobase/taskboard/internal/structs"
)

const taskNotFoundText = "Task not found"

// PageHandler serves the server-rendered task pages.
type PageHandler struct {
	svc    *service.TaskService
	logger *logger.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(svc *service.TaskService, logger *logger.Logger) *PageHandler {
	return &PageHandler{
		svc:    svc,
		logger: logger,
	}
}

// pageID parses the task_id path segment. A non-integer id is answered
// with 404, as if no route matched.
func pageID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		c.String(http.StatusNotFound, taskNotFoundText)
		return 0, false
	}
	return id, true
}

// Index renders the active tasks with their days left.
func (h *PageHandler) Index(c *gin.Context) {
	tasks, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to list active tasks", err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Tasks",
		"Tasks": tasks,
		"Today": h.svc.Today(),
	})
}

// Completed renders the finished tasks.
func (h *PageHandler) Completed(c *gin.Context) {
	tasks, err := h.svc.ListCompleted(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to list completed tasks", err)
		return
	}
	c.HTML(http.StatusOK, "completed.html", gin.H{
		"Title": "Completed tasks",
		"Tasks": tasks,
	})
}

// AddForm renders the empty creation form.
func (h *PageHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_task.html", gin.H{
		"Title":      "Add task",
		"Priorities": structs.Priorities,
	})
}

// Add creates a task from the submitted form and redirects home.
func (h *PageHandler) Add(c *gin.Context) {
	var body structs.TaskBody
	if err := c.ShouldBindWith(&body, binding.Form); err != nil {
		c.String(http.StatusBadRequest, "Error: could not read form")
		return
	}

	if _, err := h.svc.CreateTask(c.Request.Context(), &body); err != nil {
		h.writeError(c, "failed to create task", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// EditForm renders the edit form pre-filled with the task.
func (h *PageHandler) EditForm(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	task, err := h.svc.GetTask(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "failed to get task", err)
		return
	}
	c.HTML(http.StatusOK, "edit_task.html", gin.H{
		"Title":      "Edit task",
		"Task":       task,
		"Priorities": structs.Priorities,
	})
}

// Edit applies the submitted form to an existing task and redirects home.
func (h *PageHandler) Edit(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var body structs.TaskBody
	if err := c.ShouldBindWith(&body, binding.Form); err != nil {
		c.String(http.StatusBadRequest, "Error: could not read form")
		return
	}

	if _, err := h.svc.UpdateTask(c.Request.Context(), id, &body); err != nil {
		h.writeError(c, "failed to update task", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Complete marks a task done. Unknown ids still redirect.
func (h *PageHandler) Complete(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	if _, err := h.svc.CompleteTask(c.Request.Context(), id); err != nil {
		h.serverError(c, "failed to complete task", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete removes a task. Unknown ids still redirect.
func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	if _, err := h.svc.DeleteTask(c.Request.Context(), id); err != nil {
		h.serverError(c, "failed to delete task", err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// writeError maps service errors to plain-text responses.
func (h *PageHandler) writeError(c *gin.Context, msg string, err error) {
	var ve *structs.ValidationError
	switch {
	case errors.As(err, &ve):
		h.logger.Warn(c.Request.Context(), "rejected task form", "field", ve.Field, "reason", string(ve.Reason))
		c.String(http.StatusBadRequest, ve.Message)
	case errors.Is(err, structs.ErrTaskNotFound):
		c.String(http.StatusNotFound, taskNotFoundText)
	default:
		h.serverError(c, msg, err)
	}
}

func (h *PageHandler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(c.Request.Context(), msg, "error", err)
	c.String(http.StatusInternalServerError, "Internal server error")
}
