// Package logging provides structured logging for shardctl using zap.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	once   sync.Once
)

// Config holds logging configuration, set once from CLI flags or an
// on-disk preference file.
type Config struct {
	Level string // debug, info, warn, error
	JSON  bool   // output as JSON, otherwise a human-readable console encoder
}

// DefaultConfig returns sensible defaults for interactive CLI use.
func DefaultConfig() Config {
	return Config{
		Level: "info",
		JSON:  false,
	}
}

// Init initializes the global logger. Only the first call takes effect;
// later calls are no-ops, matching the CLI's single-configuration-per-run
// model.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		err = initLogger(cfg)
	})
	return err
}

func initLogger(cfg Config) error {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if !cfg.JSON {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	// shardctl writes its actual output (shares or the recovered secret)
	// to stdout; all logging goes to stderr so the two streams never mix.
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	var err error
	logger, err = zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	sugar = logger.Sugar()
	return nil
}

// InitDefault initializes the logger with defaults if nothing has
// configured it yet.
func InitDefault() {
	if logger == nil {
		_ = Init(DefaultConfig())
	}
}

// L returns the global logger.
func L() *zap.Logger {
	InitDefault()
	return logger
}

// S returns the global sugared logger.
func S() *zap.SugaredLogger {
	InitDefault()
	return sugar
}

// Sync flushes any buffered log entries.
func Sync() error {
	if logger != nil {
		return logger.Sync()
	}
	return nil
}

// --- Convenience functions ---

// Debug logs a debug message with fields.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs an info message with fields.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a warning message with fields.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs an error message with fields.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// --- Field constructors for common types ---

// String creates a string field.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Int creates an int field.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Err creates an error field.
func Err(err error) zap.Field {
	return zap.Error(err)
}
