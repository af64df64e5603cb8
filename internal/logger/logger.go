// Package logger provides a context-aware logrus logger.
//
// Every method takes a context so the request trace id travels with each
// entry, followed by a message and optional key/value pairs:
//
//	log.Info(ctx, "task created", "id", task.ID)
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ncobase/taskboard/internal/config"
	"github.com/ncobase/taskboard/internal/ctxutil"
	"github.com/sirupsen/logrus"
)

// Key constants
const VersionKey = "version"

// ErrorKey mirrors logrus.ErrorKey, which is a variable and cannot be a constant.
var ErrorKey = logrus.ErrorKey

// Logger wraps logrus with context-first helpers.
type Logger struct {
	*logrus.Logger
	version string

	mu      sync.Mutex
	logFile *os.File
	logPath string
	stop    chan struct{}
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StdLogger returns the singleton logger instance.
func StdLogger() *Logger {
	once.Do(func() {
		standardLogger = NewLogger()
	})
	return standardLogger
}

// NewLogger returns an unconfigured logger writing text to stdout.
func NewLogger() *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// Init initializes the logger with the given configuration and returns a
// cleanup function that closes any file output.
func (l *Logger) Init(c *config.Logger) (func(), error) {
	if c == nil {
		return func() {}, nil
	}

	l.ApplyLevel(c.Level)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch c.Output {
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger.output_file is required when output is file")
		}
		l.logPath = c.OutputFile
		if err := l.setupLogFile(); err != nil {
			return nil, err
		}
		l.stop = make(chan struct{})
		go l.periodicLogRotation()
	default:
		l.SetOutput(os.Stdout)
	}

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.stop != nil {
			close(l.stop)
			l.stop = nil
		}
		if l.logFile != nil {
			_ = l.logFile.Close()
			l.logFile = nil
		}
	}, nil
}

// ApplyLevel sets the logrus level, clamping out-of-range values.
func (l *Logger) ApplyLevel(level int) {
	switch {
	case level < int(logrus.PanicLevel):
		level = int(logrus.PanicLevel)
	case level > int(logrus.TraceLevel):
		level = int(logrus.TraceLevel)
	}
	l.SetLevel(logrus.Level(level))
}

func (l *Logger) setupLogFile() error {
	if err := os.MkdirAll(filepath.Dir(l.logPath), 0o755); err != nil {
		return err
	}
	return l.rotateLog()
}

func (l *Logger) rotateLog() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	logFilePath := fmt.Sprintf("%s.%s.log", strings.TrimSuffix(l.logPath, ".log"), time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	prev := l.logFile
	l.logFile = f
	l.SetOutput(f)
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

func (l *Logger) periodicLogRotation() {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			if err := l.rotateLog(); err != nil {
				l.Logger.Errorf("Error rotating log: %v", err)
			}
		}
	}
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		fields[ctxutil.TraceIDKey] = traceID
	}
	if l.version != "" {
		fields[VersionKey] = l.version
	}

	entry := l.WithFields(fields)
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	return entry
}

// kvFields turns alternating key/value pairs into logrus fields. A trailing
// key without value is recorded under "!BADKEY".
func kvFields(kv []any) logrus.Fields {
	fields := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if i+1 >= len(kv) {
			fields["!BADKEY"] = key
			break
		}
		val := kv[i+1]
		if err, isErr := val.(error); isErr && err != nil {
			val = err.Error()
		}
		fields[key] = val
	}
	return fields
}

func (l *Logger) log(ctx context.Context, level logrus.Level, msg string, kv ...any) {
	if !l.IsLevelEnabled(level) {
		return
	}
	l.entryFromContext(ctx).WithFields(kvFields(kv)).Log(level, msg)
}

// Trace logs msg at trace level with optional key/value pairs.
func (l *Logger) Trace(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.TraceLevel, msg, kv...)
}

// Debug logs a debug message.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.DebugLevel, msg, kv...)
}

// Info logs an informational message with the request fields from ctx.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.InfoLevel, msg, kv...)
}

// Warn logs a warning.
func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.WarnLevel, msg, kv...)
}

// Error logs msg at error level. kv usually carries an "error" key.
func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.log(ctx, logrus.ErrorLevel, msg, kv...)
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(out io.Writer) {
	l.Logger.SetOutput(out)
}

// AddHook adds a hook to the logger
func (l *Logger) AddHook(hook logrus.Hook) {
	l.Logger.AddHook(hook)
}
