// Package handler provides the HTML pages and JSON API for tasks.
package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/service"
	"github.com/ncobase/taskboard/internal/version"
)

// ProviderSet is the wire provider set for the handler layer.
var ProviderSet = wire.NewSet(NewHandler)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Page   *PageHandler
	Task   *TaskHandler
	tmpl   *template.Template
	logger *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, logger *logger.Logger) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Handler{
		Page:   NewPageHandler(svc.Task, logger),
		Task:   NewTaskHandler(svc.Task, logger),
		tmpl:   tmpl,
		logger: logger,
	}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(h.tmpl)

	r.GET("/health", h.Health)

	r.GET("/", h.Page.Index)
	r.GET("/add", h.Page.AddForm)
	r.POST("/add", h.Page.Add)
	r.GET("/edit/:task_id", h.Page.EditForm)
	r.POST("/edit/:task_id", h.Page.Edit)
	r.GET("/complete/:task_id", h.Page.Complete)
	r.GET("/completed", h.Page.Completed)
	r.GET("/delete/:task_id", h.Page.Delete)

	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.Task.ListActive)
			tasks.POST("", h.Task.Create)
			tasks.GET("/completed", h.Task.ListCompleted)
			tasks.GET("/:task_id", h.Task.Get)
			tasks.PUT("/:task_id", h.Task.Update)
			tasks.DELETE("/:task_id", h.Task.Delete)
			tasks.POST("/:task_id/complete", h.Task.Complete)
		}
	}
}

// Health reports liveness and the running version.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": version.GetVersionInfo().Version,
	})
}
