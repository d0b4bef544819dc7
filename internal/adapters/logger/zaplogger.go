package logger

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradingJournal/internal/ports"
)

// ZapLogger implements ports.Logger on top of a zap JSON logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a JSON logger writing to os.Stderr.
func NewZapLogger(level LogLevel) *ZapLogger {
	return NewZapLoggerTo(os.Stderr, level)
}

// NewZapLoggerTo creates a JSON logger writing to w.
func NewZapLoggerTo(w io.Writer, level LogLevel) *ZapLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		level.zapLevel(),
	)
	return &ZapLogger{logger: zap.New(core)}
}

// New returns the logger matching format. Text output uses StdLogger.
func New(format Format, level LogLevel) ports.Logger {
	if format == FormatJSON {
		return NewZapLogger(level)
	}
	return NewStdLogger(level)
}

func toZapFields(fields []map[string]interface{}) []zap.Field {
	if len(fields) == 0 || fields[0] == nil {
		return nil
	}
	out := make([]zap.Field, 0, len(fields[0]))
	for k, v := range fields[0] {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Debug logs a message at Debug level.
func (l *ZapLogger) Debug(_ context.Context, msg string, fields ...map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

// Info logs a message at Info level.
func (l *ZapLogger) Info(_ context.Context, msg string, fields ...map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

// Warn logs a message at Warning level.
func (l *ZapLogger) Warn(_ context.Context, msg string, fields ...map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message at Error level.
func (l *ZapLogger) Error(_ context.Context, err error, msg string, fields ...map[string]interface{}) {
	l.logger.Error(msg, append(toZapFields(fields), zap.Error(err))...)
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// Sync flushes l if its adapter buffers output. Other loggers are a no-op.
func Sync(l ports.Logger) error {
	if s, ok := l.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
