// Package observes reports errors and panics to Sentry and exports
// request traces over OTLP when configured.
package observes

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/wire"
	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/logger"
	"github.com/ncobase/taskboard/internal/version"
	"github.com/sirupsen/logrus"
)

// ProviderSet is the wire provider set for error reporting and tracing.
var ProviderSet = wire.NewSet(ProvideReporter, ProvideTracer)

// Reporter forwards panics to Sentry. The zero value is a no-op.
type Reporter struct {
	hub *sentry.Hub
}

// Enabled reports whether events are sent anywhere.
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Recover reports a recovered panic value.
func (r *Reporter) Recover(ctx context.Context, recovered any) {
	if !r.Enabled() {
		return
	}
	hub := r.hub.Clone()
	if ctx != nil {
		hub.RecoverWithContext(ctx, recovered)
		return
	}
	hub.Recover(recovered)
}

// NewReporter wraps an existing hub.
func NewReporter(hub *sentry.Hub) *Reporter {
	return &Reporter{hub: hub}
}

// ProvideReporter initialises Sentry from configuration and hooks it into
// the logger. Without a DSN it returns a disabled reporter.
func ProvideReporter(cfg *config.Config, obs *config.Observes, l *logger.Logger) (*Reporter, func(), error) {
	if obs == nil || !obs.Sentry.Enabled() {
		return &Reporter{}, func() {}, nil
	}

	release := obs.Sentry.Release
	if release == "" {
		release = version.GetVersionInfo().Version
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              obs.Sentry.Endpoint,
		AttachStacktrace: true,
		SampleRate:       obs.Sentry.SampleRate,
		ServerName:       cfg.AppName,
		Release:          release,
		Environment:      obs.Sentry.Environment,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	hub := sentry.CurrentHub()
	l.AddHook(NewSentryHook(hub))

	cleanup := func() {
		sentry.Flush(2 * time.Second)
	}
	return NewReporter(hub), cleanup, nil
}

// SentryHook sends error-and-above log entries to Sentry.
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook returns a logrus hook bound to hub.
func NewSentryHook(hub *sentry.Hub) *SentryHook {
	return &SentryHook{hub: hub}
}

// Levels implements logrus.Hook.
func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

// Fire implements logrus.Hook.
func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time
	for k, v := range entry.Data {
		event.Extra[k] = v
	}
	h.hub.CaptureEvent(event)
	return nil
}

func sentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
