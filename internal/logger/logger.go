package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface for structured logging
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// zapLogger implements Logger over a zap.SugaredLogger
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger at the given level with json or console output.
func New(levelStr, format string) Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	return &zapLogger{sugar: l.Sugar()}
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// Info logs an info message
func (l *zapLogger) Info(msg string, fields ...interface{}) {
	l.sugar.Infow(msg, fields...)
}

// Error logs an error message
func (l *zapLogger) Error(msg string, err error, fields ...interface{}) {
	l.sugar.Errorw(msg, append([]interface{}{"error", err}, fields...)...)
}

// Warn logs a warning message
func (l *zapLogger) Warn(msg string, fields ...interface{}) {
	l.sugar.Warnw(msg, fields...)
}

// Debug logs a debug message
func (l *zapLogger) Debug(msg string, fields ...interface{}) {
	l.sugar.Debugw(msg, fields...)
}

// Fatal logs a fatal error and exits
func (l *zapLogger) Fatal(msg string, err error, fields ...interface{}) {
	l.sugar.Fatalw(msg, append([]interface{}{"error", err}, fields...)...)
}
