package observes

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/logger"
)

type captured struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *captured) beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func newTestHub(t *testing.T) (*sentry.Hub, *captured) {
	t.Helper()
	c := &captured{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		SampleRate: 1.0,
		BeforeSend: c.beforeSend,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return sentry.NewHub(client, sentry.NewScope()), c
}

func TestSentryHookForwardsErrors(t *testing.T) {
	hub, c := newTestHub(t)

	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	l.AddHook(NewSentryHook(hub))

	l.Info(context.Background(), "not forwarded")
	l.Error(context.Background(), "failed to create task", "id", 3)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) != 1 {
		t.Fatalf("captured %d events, want 1", len(c.events))
	}
	ev := c.events[0]
	if ev.Message != "failed to create task" || ev.Level != sentry.LevelError {
		t.Errorf("event = %q/%s", ev.Message, ev.Level)
	}
	if ev.Extra["id"] != 3 {
		t.Errorf("extra id = %v", ev.Extra["id"])
	}
}

func TestReporterRecover(t *testing.T) {
	hub, c := newTestHub(t)
	NewReporter(hub).Recover(context.Background(), "boom")

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.events) != 1 {
		t.Fatalf("captured %d events, want 1", len(c.events))
	}
}

func TestDisabledReporter(t *testing.T) {
	r, cleanup, err := ProvideReporter(&config.Config{}, &config.Observes{Sentry: &config.Sentry{}}, logger.NewLogger())
	if err != nil {
		t.Fatalf("ProvideReporter: %v", err)
	}
	defer cleanup()

	if r.Enabled() {
		t.Errorf("reporter enabled without a DSN")
	}
	r.Recover(context.Background(), "ignored")

	var nilReporter *Reporter
	nilReporter.Recover(context.Background(), "ignored")
}
