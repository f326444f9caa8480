package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger wraps a sugared zap logger with key/value helpers
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// ParseLevel maps a LOG_LEVEL value onto a zap level. TRACE is treated as
// DEBUG; unknown values report ok=false.
func ParseLevel(level string) (zapcore.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "ERROR":
		return zapcore.ErrorLevel, true
	case "WARN", "WARNING":
		return zapcore.WarnLevel, true
	case "INFO", "":
		return zapcore.InfoLevel, true
	case "DEBUG", "TRACE":
		return zapcore.DebugLevel, true
	}
	return zapcore.InfoLevel, false
}

// New builds a logger for mode ("prod"/"production" or anything else for dev)
// that drops entries below level.
func New(mode, level string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLevel, _ := ParseLevel(level)
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// NewObserved returns a logger that records entries for inspection in tests
func NewObserved() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, keysAndValues...)
}

// With returns a child logger carrying the given fields
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
