package ctxutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestEnsureTraceID(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	if id == "" {
		t.Fatal("expected a generated trace id")
	}
	if got := GetTraceID(ctx); got != id {
		t.Errorf("GetTraceID = %q, want %q", got, id)
	}

	again, id2 := EnsureTraceID(ctx)
	if id2 != id || GetTraceID(again) != id {
		t.Errorf("EnsureTraceID replaced an existing id")
	}
}

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen != "abc-123" {
		t.Errorf("handler saw trace id %q", seen)
	}
	if got := w.Header().Get(TraceIDHeader); got != "abc-123" {
		t.Errorf("response header = %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(TraceIDHeader) == "" {
		t.Errorf("no trace id generated")
	}
}
