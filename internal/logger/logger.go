package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// Logger wraps the zap logger with additional functionality
type Logger struct {
	*zap.Logger
}

// NewLogger creates a new logger at the given level ("debug", "info", "warn", "error").
// An empty level means info.
// Logs go to stderr so computed results can be piped from stdout.
func NewLogger(level string) (*Logger, error) {
	atomicLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid log level %q", level)
		}

		atomicLevel = zap.NewAtomicLevelAt(parsed)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = atomicLevel

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// NewNopLogger returns a logger that discards everything. Used by tests and
// as the default when callers do not supply one.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a child logger with the given name segment appended.
func (l *Logger) Named(name string) *Logger {
	if l == nil || l.Logger == nil {
		return NewNopLogger()
	}

	return &Logger{Logger: l.Logger.Named(name)}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
