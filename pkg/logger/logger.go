// Package logger wraps zap with context-aware helpers. A request-scoped
// logger can be attached to a context and enriched with fields as it flows
// through the application; callers log through the package-level helpers,
// which use the context logger or fall back to the default one.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects the verbose, human-readable console
	// configuration.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment selects the sampled JSON configuration suitable
	// for log aggregation.
	ProductionEnvironment = "production"
)

// defaultLogger is used whenever a context carries no logger of its own.
var defaultLogger *zap.Logger //nolint: gochecknoglobals

// Setup builds the default logger for the given environment. It must be
// called once at startup before any of the logging helpers are used.
func Setup(environment string) {
	switch environment {
	case ProductionEnvironment:
		defaultLogger, _ = zap.NewProduction()
	default:
		defaultLogger, _ = zap.NewDevelopment()
	}
}

// key is the private context key under which loggers are stored.
type key struct{}

// Get returns the logger attached to ctx, or the default logger when none is
// attached.
func Get(ctx context.Context) *zap.Logger {
	if attached, _ := ctx.Value(key{}).(*zap.Logger); attached != nil {
		return attached
	}

	return defaultLogger
}

// WithLogger returns a child context carrying the provided logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields returns a child context whose logger has the given fields
// attached. Log calls made through that context include the fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the context logger is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

// Debug logs msg at debug level using the context logger.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs msg at info level using the context logger.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs msg at warn level using the context logger.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs msg at error level using the context logger.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs msg at fatal level using the context logger, then exits.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
