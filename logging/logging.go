package logging

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Process-global context attached to every log line: a correlation id
// generated once per process, the pid, and the hostname.
var globalContext = func() map[string]string {
	host, _ := os.Hostname()
	return map[string]string{
		"correlation_id": uuid.New().String()[:6],
		"pid":            strconv.Itoa(os.Getpid()),
		"host":           host,
	}
}()

// Logger is a named, context-carrying structured logger. Each name maps to
// one shared instance; context fields added with UpdateContext appear on
// every subsequent line from that instance.
type Logger struct {
	name string
	base zerolog.Logger

	mu     sync.RWMutex
	fields map[string]any
}

var (
	instMu    sync.Mutex
	instances = make(map[string]*Logger)
)

// New returns the logger registered under name, creating it with cfg on
// first use. Subsequent calls with the same name return the existing
// instance and ignore cfg. A nil cfg uses DefaultConfig.
func New(name string, cfg *Config) *Logger {
	instMu.Lock()
	defer instMu.Unlock()
	if l, ok := instances[name]; ok {
		return l
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Logger{
		name:   name,
		base:   newBase(name, cfg),
		fields: make(map[string]any),
	}
	instances[name] = l
	return l
}

// Reset drops every registered logger instance. This is primarily useful
// for testing.
func Reset() {
	instMu.Lock()
	defer instMu.Unlock()
	instances = make(map[string]*Logger)
}

func newBase(name string, cfg *Config) zerolog.Logger {
	var w io.Writer = os.Stderr
	if cfg.FilePath != "" {
		if f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = f
		}
	}
	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	ctx := zerolog.New(w).Level(level).With().Timestamp().Str("log_type", name)
	if cfg.Domain != "" {
		ctx = ctx.Str("log_domain", cfg.Domain)
	}
	for k, v := range globalContext {
		ctx = ctx.Str(k, v)
	}
	return ctx.Logger()
}

// Name returns the name the logger was registered under.
func (l *Logger) Name() string { return l.name }

// UpdateContext merges fields into the logger's context.
func (l *Logger) UpdateContext(fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, v := range fields {
		l.fields[k] = v
	}
}

// SetContext replaces the logger's context with fields.
func (l *Logger) SetContext(fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = make(map[string]any, len(fields))
	for k, v := range fields {
		l.fields[k] = v
	}
}

// ClearContext removes every context field added to the logger.
func (l *Logger) ClearContext() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = make(map[string]any)
}

// RemoveContext removes the named context fields.
func (l *Logger) RemoveContext(keys ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, k := range keys {
		delete(l.fields, k)
	}
}

// Context returns a copy of the logger's current context fields.
func (l *Logger) Context() map[string]any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}

// Zerolog returns a zerolog.Logger carrying the instance's current context
// fields, for callers that want the fluent event API directly.
func (l *Logger) Zerolog() zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.base.With().Fields(l.fields).Logger()
}

// Debug logs msg at debug level with optional extra fields.
func (l *Logger) Debug(msg string, fields map[string]any) {
	zl := l.Zerolog()
	zl.Debug().Fields(fields).Msg(msg)
}

// Info logs msg at info level with optional extra fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	zl := l.Zerolog()
	zl.Info().Fields(fields).Msg(msg)
}

// Warn logs msg at warn level with optional extra fields.
func (l *Logger) Warn(msg string, fields map[string]any) {
	zl := l.Zerolog()
	zl.Warn().Fields(fields).Msg(msg)
}

// Error logs msg at error level with err and optional extra fields.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	zl := l.Zerolog()
	zl.Error().Err(err).Fields(fields).Msg(msg)
}
