// logging/logger.go

package util

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a no-op until InitLogger runs, so packages can log from tests
// without setup.
var Log *zap.Logger = zap.NewNop()

const (
	logFileName      = "lockey.log"
	errorLogFileName = "lockey_error.log"
)

// InitLogger installs the process logger. JSON lines go to stdout and
// <dir>/lockey.log; zap's own errors go to stderr and <dir>/lockey_error.log.
// LOG_LEVEL overrides the default info level.
func InitLogger(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	cfg, err := newConfig(dir, os.Getenv("LOG_LEVEL"))
	if err != nil {
		return err
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Log = l
	zap.ReplaceGlobals(l)
	return nil
}

func newConfig(dir, level string) (zap.Config, error) {
	cfg := zap.NewProductionConfig()

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
		cfg.Level.SetLevel(lvl)
	}

	cfg.OutputPaths = []string{"stdout", filepath.Join(dir, logFileName)}
	cfg.ErrorOutputPaths = []string{"stderr", filepath.Join(dir, errorLogFileName)}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	return cfg, nil
}

// UseLogger swaps the package logger, e.g. for an observer core in tests.
func UseLogger(l *zap.Logger) {
	Log = l
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

func Sync() error {
	return Log.Sync()
}
