// Package server assembles the HTTP application and runs it.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/ctxutil"
	"github.com/ncobase/taskboard/internal/handler"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/observes"
	"go.opentelemetry.io/otel/trace"
)

// App represents the main application.
type App struct {
	config   *config.Config
	srv      *config.Server
	logger   *logger.Logger
	reporter *observes.Reporter
	engine   *gin.Engine
	server   *http.Server
}

// NewApp creates a new application instance.
func NewApp(
	cfg *config.Config,
	srv *config.Server,
	logger *logger.Logger,
	reporter *observes.Reporter,
	tp trace.TracerProvider,
	h *handler.Handler,
) *App {
	switch cfg.RunMode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{
		config:   cfg,
		srv:      srv,
		logger:   logger,
		reporter: reporter,
	}

	router := gin.New()
	router.Use(ctxutil.TraceMiddleware())
	router.Use(observes.TracingMiddleware(tp))
	router.Use(a.loggerMiddleware())
	router.Use(gin.CustomRecovery(a.recoverPanic))
	h.RegisterRoutes(router)
	a.engine = router

	return a
}

// Handler returns the routed engine.
func (a *App) Handler() http.Handler {
	return a.engine
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.srv.Addr())
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	a.server = &http.Server{
		Handler:      a.engine,
		ReadTimeout:  a.srv.ReadTimeout,
		WriteTimeout: a.srv.WriteTimeout,
		IdleTimeout:  a.srv.IdleTimeout,
	}

	if a.config.Viper != nil && a.config.Viper.ConfigFileUsed() != "" {
		a.config.Watch(func(c *config.Config) {
			level := c.LoggerConfig().Level
			a.logger.ApplyLevel(level)
			a.logger.Info(context.Background(), "config reloaded", "logger.level", level)
		})
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(context.Background(), "Starting server", "addr", ln.Addr().String())
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error(context.Background(), "Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.srv.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(context.Background(), "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(context.Background(), "Server exited")
	return nil
}

// loggerMiddleware creates a Gin middleware for request logging.
func (a *App) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		a.logger.Info(c.Request.Context(), "HTTP request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"ip", c.ClientIP(),
		)
	}
}

func (a *App) recoverPanic(c *gin.Context, recovered any) {
	a.logger.Error(c.Request.Context(), "panic recovered", "panic", recovered, "path", c.Request.URL.Path)
	a.reporter.Recover(c.Request.Context(), recovered)
	c.AbortWithStatus(http.StatusInternalServerError)
}
