// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Loggers can be derived into a context with extra
// key/value pairs, and every entry automatically carries the trace and span
// ids of the active span when one is present.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/aiowallet/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the unexported type used to store derived loggers in a context.
type ctxKeyType struct{}

// ctxKey is the context key under which derived loggers are stored.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger with the given minimum level
// ("debug", "info", "warn", "error", "panic", "fatal"). It logs JSON to stdout
// and, if telemetry registered a LoggerProvider, also forwards entries through
// the otelzap bridge. Calling Init more than once has no effect after the
// first successful call.
//
// Returns an error if the level cannot be parsed.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/aiowallet", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on shutdown.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the active trace/span ids and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		l = l.With("trace_id", spanCtx.TraceID().String())
	}
	if spanCtx.HasSpanID() {
		l = l.With("span_id", spanCtx.SpanID().String())
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a copy of ctx carrying a child logger with the given
// key/value pairs. Every later log call made with the returned context
// includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
