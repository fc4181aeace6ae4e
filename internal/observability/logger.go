package observability

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Logger is a zerolog logger that stamps trace and span ids from the
// context onto every event
type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates a logger writing to stdout
func NewLogger(config Config) *Logger {
	return NewLoggerTo(config, os.Stdout)
}

// NewLoggerTo creates a logger writing to w. The terminal host points this
// at a file so log lines never land on the screen it draws.
func NewLoggerTo(config Config, w io.Writer) *Logger {
	if config.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return &Logger{
		logger: zerolog.New(w).
			Level(parseLogLevel(config.LogLevel)).
			With().
			Timestamp().
			Str("service", config.ServiceName).
			Str("version", config.ServiceVersion).
			Str("environment", config.Environment).
			Logger(),
	}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// parseLogLevel maps LOG_LEVEL onto zerolog, defaulting to info. Fatal and
// panic are refused because the hosts never exit from a log call.
func parseLogLevel(level string) zerolog.Level {
	if strings.EqualFold(level, "warning") {
		return zerolog.WarnLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel || parsed > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// WithContext returns the logger with trace correlation fields when ctx
// carries a valid span
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.logger
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		logger = logger.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Bool("trace_sampled", sc.IsSampled()).
			Logger()
	}
	return &logger
}

func (l *Logger) Info(ctx context.Context) *zerolog.Event  { return l.WithContext(ctx).Info() }
func (l *Logger) Debug(ctx context.Context) *zerolog.Event { return l.WithContext(ctx).Debug() }
func (l *Logger) Warn(ctx context.Context) *zerolog.Event  { return l.WithContext(ctx).Warn() }
func (l *Logger) Error(ctx context.Context) *zerolog.Event { return l.WithContext(ctx).Error() }

// With returns a child logger carrying an extra string field
func (l *Logger) With(key, value string) *Logger {
	return &Logger{logger: l.logger.With().Str(key, value).Logger()}
}

// OTELErrorHandler reports SDK export failures through the logger
func (l *Logger) OTELErrorHandler() func(error) {
	return func(err error) {
		l.logger.Error().
			Err(err).
			Str("source", "otel_sdk").
			Msg("OpenTelemetry SDK error")
	}
}
