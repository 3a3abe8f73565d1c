// Package logger provides a zap-based application logger that carries the
// service name and the active trace id on every entry.
package logger

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity written by a Logger.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// TraceIDFn extracts a trace id from a context. It may return "".
type TraceIDFn func(ctx context.Context) string

// Logger writes structured JSON entries.
type Logger struct {
	z         *zap.Logger
	traceIDFn TraceIDFn
}

// New creates a logger writing JSON lines to w.
func New(w io.Writer, minLevel Level, serviceName string, traceIDFn TraceIDFn) *Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), minLevel.zap())
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).With(zap.String("service", serviceName))
	return &Logger{z: z, traceIDFn: traceIDFn}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Debug logs at debug level. args are alternating keys and values.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Debugw(msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Infow(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Warnw(msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.with(ctx).Errorw(msg, args...)
}

// Zap exposes the underlying zap logger.
func (l *Logger) Zap() *zap.Logger { return l.z }

// Sync flushes buffered entries.
func (l *Logger) Sync() error { return l.z.Sync() }

func (l *Logger) with(ctx context.Context) *zap.SugaredLogger {
	s := l.z.Sugar()
	if l.traceIDFn == nil || ctx == nil {
		return s
	}
	if id := l.traceIDFn(ctx); id != "" {
		s = s.With("trace_id", id)
	}
	return s
}
