package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	output = zapcore.AddSync(os.Stdout)
	logger = newLogger(output, os.Getenv("APPLICATION_NAME"))
)

func newLogger(ws zapcore.WriteSyncer, name string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, level)

	return zap.New(core,
		zap.Fields(zap.String("logName", name)),
		zap.AddCaller(),
		zap.AddCallerSkip(1))
}

// SetName replaces the logName field of every following entry.
// Call it once at startup, after the environment is loaded.
func SetName(name string) {
	logger = newLogger(output, name)
}

// SetLevel changes the level of the global logger at runtime.
// Accepts debug, info, warn, error (case-insensitive). An empty value keeps info.
func SetLevel(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		value = "info"
	}

	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(value)); err != nil {
		return fmt.Errorf("unknown log level %q: %w", value, err)
	}
	level.SetLevel(parsed)
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Debug logs a message at DebugLevel.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}
