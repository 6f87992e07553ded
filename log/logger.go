package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogContextKey       = "logger"
	LogTraceIDKey       = "trace_id"
	LogModuleKey        = "module"
	LogComponentKey     = "component"
	LogHostnameKey      = "hostname"
	LogTimestampFormat  = time.RFC3339Nano
	LogCallerSkipFrames = 3

	FormatConsole = "console"
	FormatJSON    = "json"
)

type contextKey string

// KV is a set of structured fields attached to a log message
type KV map[string]any

// Logger wraps zerolog.Logger with module information
type Logger struct {
	logger     zerolog.Logger
	moduleInfo string
	hostname   string
	traceID    string
}

// LogConfig logging configuration
type LogConfig struct {
	Level            string `json:"level"`
	Format           string `json:"format"` // "console" or "json"
	IncludeTimestamp bool   `json:"includeTimestamp"`
	IncludeCaller    bool   `json:"includeCaller"`
	IncludeHostname  bool   `json:"includeHostname"`
	CallerSkipFrames int    `json:"callerSkipFrames"`
	NoColor          bool   `json:"noColor"`
}

// NewDefaultConfig returns a default logging configuration
func NewDefaultConfig() *LogConfig {
	return &LogConfig{
		Level:            "info",
		Format:           FormatConsole,
		IncludeTimestamp: true,
		IncludeCaller:    false,
		IncludeHostname:  false,
		CallerSkipFrames: LogCallerSkipFrames,
		NoColor:          false,
	}
}

// Validate checks level and format
func (c *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	switch c.Format {
	case FormatConsole, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid log format: %s", c.Format)
}

// Configure configures the global logger, writing to stderr
func Configure(cfg *LogConfig) error {
	return ConfigureWriter(cfg, os.Stderr)
}

// ConfigureWriter configures the global logger to write to dest
func ConfigureWriter(cfg *LogConfig, dest io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := zerolog.ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = LogTimestampFormat

	output := dest
	if cfg.Format == FormatConsole {
		output = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = dest
			w.TimeFormat = LogTimestampFormat
			w.NoColor = cfg.NoColor
		})
	}

	ctx := zerolog.New(output).Level(level).With()
	if cfg.IncludeTimestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.IncludeHostname {
		if hostname, err := os.Hostname(); err == nil {
			ctx = ctx.Str(LogHostnameKey, hostname)
		}
	}
	if cfg.IncludeCaller {
		ctx = ctx.Caller()
		zerolog.CallerSkipFrameCount = cfg.CallerSkipFrames
	}
	log.Logger = ctx.Logger()
	return nil
}

// New creates a new logger with module information
func New(module string) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		logger:     log.With().Str(LogModuleKey, module).Logger(),
		moduleInfo: module,
		hostname:   hostname,
	}
}

// NewWithComponent creates a new logger with module and component information
func NewWithComponent(module, component string) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		logger: log.With().
			Str(LogModuleKey, module).
			Str(LogComponentKey, component).
			Logger(),
		moduleInfo: fmt.Sprintf("%s.%s", module, component),
		hostname:   hostname,
	}
}

// NewFromZerolog wraps an existing zerolog.Logger
func NewFromZerolog(module string, zl zerolog.Logger) *Logger {
	return &Logger{
		logger:     zl.With().Str(LogModuleKey, module).Logger(),
		moduleInfo: module,
	}
}

// WithTraceID creates a new logger with the specified trace ID
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{
		logger:     l.logger.With().Str(LogTraceIDKey, traceID).Logger(),
		moduleInfo: l.moduleInfo,
		hostname:   l.hostname,
		traceID:    traceID,
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		logger:     l.logger.With().Interface(key, value).Logger(),
		moduleInfo: l.moduleInfo,
		hostname:   l.hostname,
		traceID:    l.traceID,
	}
}

// WithContext adds the logger to the context
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey(LogContextKey), l)
}

func withFields(event *zerolog.Event, fields []KV) *zerolog.Event {
	if len(fields) > 0 {
		for k, v := range fields[0] {
			event = event.Interface(k, v)
		}
	}
	return event
}

// Debug logs a debug message with the given fields
func (l *Logger) Debug(msg string, fields ...KV) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

// Info logs an info message with the given fields
func (l *Logger) Info(msg string, fields ...KV) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

// Infof logs a formatted info message
func (l *Logger) Infof(msg string, args ...any) {
	l.logger.Info().Msgf(msg, args...)
}

// Warn logs a warning message with the given fields
func (l *Logger) Warn(msg string, fields ...KV) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

// Error logs an error message with the given fields, and the caller stack if err is not nil
func (l *Logger) Error(err error, msg string, fields ...KV) {
	event := l.logger.Error()
	if err != nil {
		event = event.Err(err)
		if stack := callerStack(1); len(stack) > 0 {
			event = event.Strs("stack", stack)
		}
	}
	withFields(event, fields).Msg(msg)
}

// Enabled returns true if messages at level would be written
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.logger.GetLevel() <= level && zerolog.GlobalLevel() <= level
}

// GetTraceID returns the trace ID associated with this logger
func (l *Logger) GetTraceID() string {
	return l.traceID
}
